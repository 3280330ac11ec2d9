package dashboard

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/export"
	"github.com/riteshkr04/fittrack/internal/logger"
	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/storage"
)

// Dashboard owns the single document instance and the two id counters.
// All mutation goes through its operations; renderers only read.
type Dashboard struct {
	store storage.Provider
	doc   *models.Document

	nextActivityID int
	nextMealID     int

	now      func() time.Time
	validate *validator.Validate
}

// New builds the dashboard from built-in defaults, overlays whatever the
// store holds, and derives the id counters from the merged document.
// Unreadable persisted state is recovered by keeping the defaults.
func New(store storage.Provider) (*Dashboard, error) {
	d := &Dashboard{
		store:    store,
		doc:      models.DefaultDocument(),
		now:      time.Now,
		validate: validator.New(),
	}

	stored, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load persisted document, using defaults", "error", err)
	}
	if stored != nil {
		d.overlay(stored)
	}

	d.recomputeCounters()
	return d, nil
}

// overlay merges a persisted document over the defaults section by
// section. A section the stored document does not carry keeps its
// default instead of being dropped.
func (d *Dashboard) overlay(stored *models.Document) {
	if !stored.Wellness.IsZero() {
		d.doc.Wellness = stored.Wellness
	}
	if stored.Activities != nil {
		d.doc.Activities = stored.Activities
	}
	if stored.Meals != nil {
		d.doc.Meals = stored.Meals
	}
	if stored.WeeklyActivity != nil {
		d.doc.WeeklyActivity = stored.WeeklyActivity
	}
	if stored.WeeklyCalories != nil {
		d.doc.WeeklyCalories = stored.WeeklyCalories
	}

	// A stored meals map may omit a slot key entirely
	for _, slot := range models.MealSlots() {
		if d.doc.Meals[slot] == nil {
			d.doc.Meals[slot] = []models.Meal{}
		}
	}
}

// recomputeCounters derives the next ids as max(existing)+1 per
// namespace. Ids are never reused, even after removals.
func (d *Dashboard) recomputeCounters() {
	d.nextActivityID = d.doc.MaxActivityID() + 1
	d.nextMealID = d.doc.MaxMealID() + 1
}

// Document returns the live document for read-only projection.
func (d *Dashboard) Document() *models.Document {
	return d.doc
}

// TotalMealCalories is the grand total across all three slots.
func (d *Dashboard) TotalMealCalories() int {
	total := 0
	for _, m := range d.doc.AllMeals() {
		total += m.Calories
	}
	return total
}

// Summary derives the read-only export artifact from the current state.
func (d *Dashboard) Summary() export.Summary {
	return export.Summary{
		ReportID:        uuid.New().String(),
		Date:            d.now().Format(constants.DateFormat),
		Wellness:        d.doc.Wellness,
		TotalActivities: len(d.doc.Activities),
		TotalMeals:      len(d.doc.AllMeals()),
		WeeklyStats: export.WeeklyStats{
			Activity: d.doc.WeeklyActivity,
			Calories: d.doc.WeeklyCalories,
		},
	}
}

func (d *Dashboard) persist() error {
	if err := d.store.Save(d.doc); err != nil {
		logger.Error("Failed to persist document", "error", err)
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}
