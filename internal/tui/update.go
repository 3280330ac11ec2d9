package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/dashboard"
	"github.com/riteshkr04/fittrack/internal/export"
	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/tui/components/activitylist"
	"github.com/riteshkr04/fittrack/internal/tui/components/meallist"
	"github.com/riteshkr04/fittrack/internal/tui/components/wellness"
)

type successClearMsg struct{}

func dismissSuccess() tea.Cmd {
	return tea.Tick(constants.SuccessDismissDelay, func(time.Time) tea.Msg {
		return successClearMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 6
		m.wellnessModel.SetSize(msg.Width, contentHeight)
		m.activitiesList.SetSize(msg.Width, contentHeight)
		m.insightsModel.SetSize(msg.Width, contentHeight)

	case successClearMsg:
		m.successMessage = ""
		return m, nil

	case wellness.ClockTickMsg:
		var cmd tea.Cmd
		m.wellnessModel, cmd = m.wellnessModel.Update(msg)
		return m, cmd

	case activitylist.AddActivityMsg:
		m.activityForm = &ActivityFormModel{Time: models.TimeMorning}
		m.form = newActivityForm(m.activityForm)
		m.previousState = m.state
		m.state = constants.StateAddActivity
		return m, m.form.Init()

	case meallist.AddMealMsg:
		m.mealForm = &MealFormModel{Slot: models.SlotBreakfast}
		m.form = newMealForm(m.mealForm)
		m.previousState = m.state
		m.state = constants.StateAddMeal
		return m, m.form.Init()

	case meallist.RemoveMealMsg:
		if err := m.dash.RemoveMeal(msg.Slot, msg.ID); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.refresh()
		return m, nil
	}

	switch m.state {
	case constants.StateAddActivity:
		return m.updateActivityForm(msg)
	case constants.StateAddMeal:
		return m.updateMealForm(msg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// Any keypress clears transient feedback
		m.errorMessage = ""
		if m.successMessage != "" {
			m.successMessage = ""
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Export):
			return m.exportSummary()
		case key.Matches(msg, m.keys.Reset):
			m.confirmReset = false
			m.form = newConfirmResetForm(&m.confirmReset)
			m.previousState = m.state
			m.state = constants.StateConfirmReset
			return m, m.form.Init()
		}
	}

	switch m.state {
	case constants.StateDashboard:
		var cmd tea.Cmd
		m.wellnessModel, cmd = m.wellnessModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateActivities:
		var cmd tea.Cmd
		m.activitiesList, cmd = m.activitiesList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateMeals:
		var cmd tea.Cmd
		m.mealsModel, cmd = m.mealsModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateActivityForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		duration, _ := strconv.Atoi(strings.TrimSpace(m.activityForm.Duration))
		calories, _ := strconv.Atoi(strings.TrimSpace(m.activityForm.Calories))
		_, err := m.dash.AddActivity(dashboard.AddActivityInput{
			Name:     m.activityForm.Name,
			Duration: duration,
			Calories: calories,
			Time:     m.activityForm.Time,
		})
		m.state = m.previousState
		if err != nil {
			m.errorMessage = err.Error()
			return m, cmd
		}
		m.refresh()
		m.successMessage = "Activity Added Successfully!"
		return m, tea.Batch(cmd, dismissSuccess())
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, cmd
}

func (m Model) updateMealForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		calories, _ := strconv.Atoi(strings.TrimSpace(m.mealForm.Calories))
		_, err := m.dash.AddMeal(dashboard.AddMealInput{
			Slot:     m.mealForm.Slot,
			Name:     m.mealForm.Name,
			Calories: calories,
		})
		m.state = m.previousState
		if err != nil {
			m.errorMessage = err.Error()
			return m, cmd
		}
		m.refresh()
		m.successMessage = "Meal Added Successfully!"
		return m, tea.Batch(cmd, dismissSuccess())
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, cmd
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = m.previousState
		if !m.confirmReset {
			return m, cmd
		}
		if err := m.dash.ResetAll(); err != nil {
			m.errorMessage = err.Error()
			return m, cmd
		}
		m.refresh()
		m.successMessage = "Dashboard Reset Successfully!"
		return m, tea.Batch(cmd, m.wellnessModel.Restart(), dismissSuccess())
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, cmd
}

func (m Model) exportSummary() (tea.Model, tea.Cmd) {
	writer := export.NewWriter(".")
	if _, err := writer.Write(m.dash.Summary()); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.successMessage = "Summary Downloaded Successfully!"
	return m, dismissSuccess()
}
