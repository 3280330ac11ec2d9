package render

import "github.com/riteshkr04/fittrack/internal/models"

// Bar is one day's column in a weekly chart.
type Bar struct {
	Day       string
	Value     int
	HeightPct float64 // 0..100, relative to the chart's effective max
}

// BarChartProjection is a weekly series scaled against an effective
// maximum so no bar ever exceeds full height.
type BarChartProjection struct {
	Label        string
	EffectiveMax int
	Bars         []Bar
}

// BarChart scales the series against max(declaredMax, largest sample).
// Samples above the declared maximum rescale the whole chart to fit.
func BarChart(series models.WeeklySeries, label string, declaredMax int) BarChartProjection {
	max := declaredMax
	if sm := series.Max(); sm > max {
		max = sm
	}

	bars := make([]Bar, 0, len(models.DayLabels()))
	for _, day := range models.DayLabels() {
		value := series[day]
		height := 0.0
		if max > 0 {
			height = float64(value) / float64(max) * 100
		}
		bars = append(bars, Bar{Day: day, Value: value, HeightPct: height})
	}

	return BarChartProjection{
		Label:        label,
		EffectiveMax: max,
		Bars:         bars,
	}
}
