package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riteshkr04/fittrack/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = m.viewDashboard()
	case constants.StateActivities:
		content = docStyle.Render(m.activitiesList.View())
	case constants.StateMeals:
		content = docStyle.Render(m.mealsModel.View())
	case constants.StateInsights:
		content = docStyle.Render(m.insightsModel.View())
	case constants.StateAddActivity, constants.StateAddMeal:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmReset:
		content = docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			dangerStyle.Render("This wipes saved data and restores the sample dashboard."),
			"",
			m.form.View(),
		))
	}

	if overlay := m.viewOverlay(); overlay != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, overlay, content)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Activities", "Meals", "Insights"} {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		clockStyle.Render(m.wellnessModel.Clock()),
		"",
		m.wellnessModel.View(),
	))
}

// viewOverlay renders the transient success banner or a blocking
// validation message, whichever is pending.
func (m Model) viewOverlay() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	return ""
}
