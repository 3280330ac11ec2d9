package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	doc   *models.Document
	width int
}

func New(doc *models.Document) Model {
	return Model{doc: doc}
}

func (m *Model) SetDocument(doc *models.Document) {
	m.doc = doc
}

func (m *Model) SetSize(width, _ int) {
	m.width = width
}

func (m Model) View() string {
	activity := render.BarChart(m.doc.WeeklyActivity, "Activity Minutes", constants.WeeklyActivityChartMax)
	calories := render.BarChart(m.doc.WeeklyCalories, "Calories Burned", constants.WeeklyCaloriesChartMax)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewChart(activity),
		"",
		m.viewChart(calories),
	)
}

// viewChart draws a weekly series as horizontal bars, one row per day,
// scaled so a 100% bar fills the available width.
func (m Model) viewChart(chart render.BarChartProjection) string {
	maxBarWidth := m.width - 16
	if maxBarWidth < 10 {
		maxBarWidth = 10
	}
	if maxBarWidth > 60 {
		maxBarWidth = 60
	}

	lines := []string{titleStyle.Render(chart.Label)}
	for _, bar := range chart.Bars {
		cells := int(bar.HeightPct / 100 * float64(maxBarWidth))
		if bar.Value > 0 && cells == 0 {
			cells = 1
		}
		lines = append(lines, fmt.Sprintf("%-4s %s %s",
			bar.Day,
			barStyle.Render(strings.Repeat("█", cells)),
			valueStyle.Render(fmt.Sprintf("%d", bar.Value)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
