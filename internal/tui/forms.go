package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/riteshkr04/fittrack/internal/models"
)

// ActivityFormModel backs the add-activity form; numeric fields stay
// strings until the operation parses them.
type ActivityFormModel struct {
	Name     string
	Duration string
	Calories string
	Time     models.TimeOfDay
}

type MealFormModel struct {
	Slot     models.MealSlot
	Name     string
	Calories string
}

func positiveNumber(field string) func(string) error {
	return func(s string) error {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		if i <= 0 {
			return fmt.Errorf("%s must be positive", field)
		}
		return nil
	}
}

func newActivityForm(fm *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(positiveNumber("duration")),
			huh.NewInput().
				Title("Calories Burned").
				Value(&fm.Calories).
				Validate(positiveNumber("calories")),
			huh.NewSelect[models.TimeOfDay]().
				Title("Time of Day").
				Options(
					huh.NewOption("Morning", models.TimeMorning),
					huh.NewOption("Afternoon", models.TimeAfternoon),
					huh.NewOption("Evening", models.TimeEvening),
				).
				Value(&fm.Time),
		),
	)
}

func newConfirmResetForm(confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all dashboard data?").
				Description("This action cannot be undone.").
				Value(confirmed),
		),
	)
}

func newMealForm(fm *MealFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.MealSlot]().
				Title("Meal Slot").
				Options(
					huh.NewOption("Breakfast", models.SlotBreakfast),
					huh.NewOption("Lunch", models.SlotLunch),
					huh.NewOption("Dinner", models.SlotDinner),
				).
				Value(&fm.Slot),
			huh.NewInput().
				Title("Meal Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Calories").
				Value(&fm.Calories).
				Validate(positiveNumber("calories")),
		),
	)
}
