package meallist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/render"
)

var (
	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

type AddMealMsg struct{}

type RemoveMealMsg struct {
	Slot models.MealSlot
	ID   int
}

// entry is one selectable row: a meal pinned to its owning slot.
type entry struct {
	slot models.MealSlot
	meal models.Meal
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add meal"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove meal"),
		),
	}
}

type Model struct {
	doc     *models.Document
	keys    KeyMap
	entries []entry
	cursor  int
}

func New(doc *models.Document) Model {
	m := Model{
		keys: DefaultKeyMap(),
	}
	m.SetDocument(doc)
	return m
}

func (m *Model) SetDocument(doc *models.Document) {
	m.doc = doc
	m.entries = m.entries[:0]
	for _, slot := range models.MealSlots() {
		for _, meal := range doc.Meals[slot] {
			m.entries = append(m.entries, entry{slot: slot, meal: meal})
		}
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMealMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if m.cursor < len(m.entries) {
				e := m.entries[m.cursor]
				return m, func() tea.Msg { return RemoveMealMsg{Slot: e.slot, ID: e.meal.ID} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var lines []string
	idx := 0
	for _, slot := range models.MealSlots() {
		projection := render.MealList(m.doc, slot)
		lines = append(lines, slotStyle.Render(string(slot)))
		if len(projection.Entries) == 0 {
			lines = append(lines, mutedStyle.Render("  No meals added"))
		}
		for _, meal := range projection.Entries {
			line := fmt.Sprintf("  %s | %d calories", meal.Name, meal.Calories)
			if idx == m.cursor {
				line = selectedStyle.Render(line)
			}
			lines = append(lines, line)
			idx++
		}
		lines = append(lines, "")
	}

	lines = append(lines, totalStyle.Render(
		fmt.Sprintf("Total calories: %d", render.GrandTotalCalories(m.doc)),
	))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
