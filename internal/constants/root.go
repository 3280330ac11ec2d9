package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName = "fittrack"
	Version = "v1.0.0"

	// StorageKey is the base name of the persisted document blob
	StorageKey = "fitTrackData"

	DefaultConfigPath = "~/.config/fittrack/" + StorageKey + ".json"

	// ClockFormat is the live clock format on the dashboard header
	ClockFormat = "Monday, January 2, 2006 03:04:05 PM"

	// DateFormat is the date label used in exported summaries (M/D/YYYY)
	DateFormat = "1/2/2006"

	// Progress ring geometry and animation
	RingRadius          = 85.0
	RingTransitionDelay = 100 * time.Millisecond
	CounterDuration     = 1500 * time.Millisecond
	CounterTickInterval = 16 * time.Millisecond
	SuccessDismissDelay = 2 * time.Second
	ClockTickInterval   = time.Second

	// Declared bar chart maxima; a chart rescales past these when a
	// sample exceeds them
	WeeklyActivityChartMax = 120
	WeeklyCaloriesChartMax = 1000

	// Export constants
	ExportFilePrefix = "fittrack-summary-"
	ExportFileSuffix = ".json"
)

const (
	// Session States
	StateDashboard SessionState = iota
	StateActivities
	StateMeals
	StateInsights
	StateAddActivity
	StateAddMeal
	StateConfirmReset
)
