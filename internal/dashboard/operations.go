package dashboard

import (
	"strings"

	"github.com/riteshkr04/fittrack/internal/models"
)

type AddActivityInput struct {
	Name     string           `validate:"required"`
	Duration int              `validate:"gt=0"`
	Calories int              `validate:"gt=0"`
	Time     models.TimeOfDay `validate:"oneof=morning afternoon evening"`
}

type AddMealInput struct {
	Slot     models.MealSlot `validate:"oneof=breakfast lunch dinner"`
	Name     string          `validate:"required"`
	Calories int             `validate:"gt=0"`
}

// AddActivity validates the input, prepends the new entry (newest first)
// and persists the document once. Rejected input leaves the document
// untouched and returns a ValidationError.
func (d *Dashboard) AddActivity(in AddActivityInput) (models.Activity, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := d.validate.Struct(in); err != nil {
		return models.Activity{}, newValidationError(err)
	}

	activity := models.Activity{
		ID:        d.nextActivityID,
		Name:      in.Name,
		Duration:  in.Duration,
		Calories:  in.Calories,
		Time:      in.Time,
		Timestamp: d.now().UnixMilli(),
	}
	d.nextActivityID++

	d.doc.Activities = append([]models.Activity{activity}, d.doc.Activities...)

	if err := d.persist(); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

// AddMeal validates the input, appends to the chosen slot and persists.
// The meal id comes from the single counter shared across all slots.
func (d *Dashboard) AddMeal(in AddMealInput) (models.Meal, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := d.validate.Struct(in); err != nil {
		return models.Meal{}, newValidationError(err)
	}

	meal := models.Meal{
		ID:       d.nextMealID,
		Name:     in.Name,
		Calories: in.Calories,
	}
	d.nextMealID++

	d.doc.Meals[in.Slot] = append(d.doc.Meals[in.Slot], meal)

	if err := d.persist(); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

// RemoveMeal drops the matching entry from the named slot. An absent id
// is a no-op, not an error; the resulting state persists either way.
func (d *Dashboard) RemoveMeal(slot models.MealSlot, id int) error {
	if !slot.Valid() {
		return &ValidationError{Fields: map[string]string{"Slot": "oneof"}}
	}

	entries := d.doc.Meals[slot]
	kept := make([]models.Meal, 0, len(entries))
	for _, m := range entries {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	d.doc.Meals[slot] = kept

	return d.persist()
}

// ResetAll clears persisted storage and rebuilds the in-memory document
// from built-in defaults, as a fresh start would.
func (d *Dashboard) ResetAll() error {
	if err := d.store.Clear(); err != nil {
		return err
	}
	d.doc = models.DefaultDocument()
	d.recomputeCounters()
	return nil
}
