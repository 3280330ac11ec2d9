package activitylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/render"
)

type AddActivityMsg struct{}

type Item struct {
	Activity models.Activity
}

func (i Item) Title() string { return i.Activity.Name }
func (i Item) Description() string {
	return fmt.Sprintf("⏱ %d min | 🔥 %d cal | %s", i.Activity.Duration, i.Activity.Calories, i.Activity.Time)
}
func (i Item) FilterValue() string { return i.Activity.Name }

type KeyMap struct {
	Add    key.Binding
	Filter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
	}
}

type Model struct {
	list       list.Model
	keys       KeyMap
	activities []models.Activity
	filters    []string
	filterIdx  int
}

func New(activities []models.Activity, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Activities"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Filter}
	}

	m := Model{
		list:    l,
		keys:    keys,
		filters: render.ActivityFilters(),
	}
	m.SetActivities(activities)
	return m
}

func (m *Model) SetActivities(activities []models.Activity) {
	m.activities = activities
	m.applyFilter()
}

func (m *Model) applyFilter() {
	filtered := render.FilterActivities(m.activities, m.Filter())
	items := make([]list.Item, len(filtered))
	for i, a := range filtered {
		items[i] = Item{Activity: a}
	}
	m.list.SetItems(items)
}

// Filter returns the active time-of-day filter label.
func (m Model) Filter() string {
	return m.filters[m.filterIdx]
}

func (m *Model) CycleFilter() {
	m.filterIdx = (m.filterIdx + 1) % len(m.filters)
	m.applyFilter()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddActivityMsg{} }
		case key.Matches(msg, m.keys.Filter):
			m.CycleFilter()
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := fmt.Sprintf("Filter: %s\n", m.Filter())
	if len(m.list.Items()) == 0 {
		return header + "\n  No activities found"
	}
	return header + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
