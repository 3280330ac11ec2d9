package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/dashboard"
	"github.com/riteshkr04/fittrack/internal/tui/components/activitylist"
	"github.com/riteshkr04/fittrack/internal/tui/components/insights"
	"github.com/riteshkr04/fittrack/internal/tui/components/meallist"
	"github.com/riteshkr04/fittrack/internal/tui/components/wellness"
)

// tabCount is how many browsable tabs precede the modal states
const tabCount = 4

type Model struct {
	dash *dashboard.Dashboard

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	wellnessModel  wellness.Model
	activitiesList activitylist.Model
	mealsModel     meallist.Model
	insightsModel  insights.Model

	form         *huh.Form
	activityForm *ActivityFormModel
	mealForm     *MealFormModel
	confirmReset bool

	successMessage string
	errorMessage   string

	quitting bool
	width    int
	height   int
}

func NewModel(dash *dashboard.Dashboard) Model {
	doc := dash.Document()

	return Model{
		dash:           dash,
		state:          constants.StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		wellnessModel:  wellness.New(doc.Wellness),
		activitiesList: activitylist.New(doc.Activities, 0, 0),
		mealsModel:     meallist.New(doc),
		insightsModel:  insights.New(doc),
	}
}

func (m Model) Init() tea.Cmd {
	return m.wellnessModel.Init()
}

// refresh re-seeds every component from the live document after a
// mutation so all views stay consistent with it.
func (m *Model) refresh() {
	doc := m.dash.Document()
	m.wellnessModel.SetWellness(doc.Wellness)
	m.activitiesList.SetActivities(doc.Activities)
	m.mealsModel.SetDocument(doc)
	m.insightsModel.SetDocument(doc)
}
