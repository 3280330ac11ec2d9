package cli

import (
	"fmt"
	"time"

	"github.com/riteshkr04/fittrack/internal/dashboard"
	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/storage"
)

type Context struct {
	Store storage.Provider
	Dash  *dashboard.Dashboard
	Debug bool
}

// FormatActivity renders one activity line for list output.
func FormatActivity(a models.Activity) string {
	return fmt.Sprintf("[%d] %s: %d min, %d cal (%s)", a.ID, a.Name, a.Duration, a.Calories, a.Time)
}

// FormatMeal renders one meal line for list output.
func FormatMeal(m models.Meal) string {
	return fmt.Sprintf("[%d] %s: %d cal", m.ID, m.Name, m.Calories)
}

// FormatTimestamp renders an activity's unix-milli creation stamp.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
