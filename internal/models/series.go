package models

// WeeklySeries maps the seven fixed day labels to a numeric sample.
type WeeklySeries map[string]int

// DayLabels returns the chart day labels in fixed Mon..Sun order. Map
// iteration order is random, so every renderer walks this slice instead.
func DayLabels() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

// Max returns the largest sample in the series, or 0 when empty.
func (s WeeklySeries) Max() int {
	max := 0
	for _, v := range s {
		if v > max {
			max = v
		}
	}
	return max
}
