package wellness

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/render"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	goalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type ClockTickMsg time.Time

type counterTickMsg struct{}

// ring is one animated metric: the projection plus the counter position
// the label has reached so far.
type ring struct {
	label string
	unit  string
	proj  render.RingProjection
	bar   progress.Model
	steps []int
	step  int
}

func (r *ring) display() int {
	if len(r.steps) == 0 {
		return 0
	}
	return r.steps[r.step]
}

func (r *ring) done() bool {
	return r.step >= len(r.steps)-1
}

type Model struct {
	rings []ring
	clock time.Time
	width int
}

func New(w models.Wellness) Model {
	m := Model{clock: time.Now()}
	m.SetWellness(w)
	return m
}

// SetWellness rebuilds the projections. A metric whose value is
// unchanged keeps its counter position, so a refresh after an unrelated
// mutation does not freeze finished rings on their first frame.
func (m *Model) SetWellness(w models.Wellness) {
	metrics := []struct {
		label string
		unit  string
		value int
		goal  int
	}{
		{"Steps", "steps", w.Steps, w.StepsGoal},
		{"Calories", "cal", w.Calories, w.CaloriesGoal},
		{"Water", "glasses", w.Water, w.WaterGoal},
	}

	old := m.rings
	rings := make([]ring, 0, len(metrics))
	for i, metric := range metrics {
		proj := render.Ring(metric.value, metric.goal)
		bar := progress.New(progress.WithDefaultGradient())
		steps := proj.CounterSteps()

		step := 0
		if i < len(old) && old[i].proj.Value == proj.Value {
			step = old[i].step
			if step > len(steps)-1 {
				step = len(steps) - 1
			}
			bar = old[i].bar
		}

		rings = append(rings, ring{
			label: metric.label,
			unit:  metric.unit,
			proj:  proj,
			bar:   bar,
			steps: steps,
			step:  step,
		})
	}
	m.rings = rings
}

func (m *Model) SetSize(width, _ int) {
	m.width = width
	for i := range m.rings {
		barWidth := width - 30
		if barWidth < 10 {
			barWidth = 10
		}
		if barWidth > 50 {
			barWidth = 50
		}
		m.rings[i].bar.Width = barWidth
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(constants.ClockTickInterval, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

func counterTick() tea.Cmd {
	return tea.Tick(constants.CounterTickInterval, func(time.Time) tea.Msg {
		return counterTickMsg{}
	})
}

// counterStart delays the first counter tick so the rings settle before
// the count-up begins.
func counterStart() tea.Cmd {
	return tea.Tick(constants.RingTransitionDelay, func(time.Time) tea.Msg {
		return counterTickMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(clockTick(), counterStart())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case ClockTickMsg:
		m.clock = time.Now()
		return m, clockTick()

	case counterTickMsg:
		animating := false
		for i := range m.rings {
			if !m.rings[i].done() {
				m.rings[i].step++
				animating = true
			}
		}
		if animating {
			return m, counterTick()
		}
	}
	return m, nil
}

// Restart re-runs the count-up animation, e.g. after a reset.
func (m *Model) Restart() tea.Cmd {
	for i := range m.rings {
		m.rings[i].step = 0
	}
	return counterStart()
}

func (m Model) Clock() string {
	return m.clock.Format(constants.ClockFormat)
}

func (m Model) View() string {
	rows := make([]string, 0, len(m.rings))
	for i := range m.rings {
		r := &m.rings[i]

		// Animate the fill alongside the counter
		fraction := 1.0
		if r.proj.Value > 0 {
			fraction = float64(r.display()) / float64(r.proj.Value)
		}
		shown := r.proj.Percent / 100 * fraction

		row := lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%s  %s %s",
				labelStyle.Render(r.label),
				valueStyle.Render(fmt.Sprintf("%d", r.display())),
				goalStyle.Render(fmt.Sprintf("/ %d %s (%.0f%%)", r.proj.Goal, r.unit, r.proj.Percent)),
			),
			r.bar.ViewAs(shown),
		)
		rows = append(rows, row, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
