package render

import "github.com/riteshkr04/fittrack/internal/models"

// FilterAll shows every activity regardless of time of day.
const FilterAll = "all"

// FilterActivities projects the activity list through a time-of-day
// filter, preserving list order. An empty result is a valid empty state.
func FilterActivities(activities []models.Activity, filter string) []models.Activity {
	if filter == FilterAll {
		return activities
	}

	filtered := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if string(a.Time) == filter {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ActivityFilters returns the filter labels in tab order.
func ActivityFilters() []string {
	filters := []string{FilterAll}
	for _, t := range models.TimesOfDay() {
		filters = append(filters, string(t))
	}
	return filters
}
