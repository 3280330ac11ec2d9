package render

import "github.com/riteshkr04/fittrack/internal/models"

// MealListProjection is one slot's entries plus the grand total across
// every slot. The total always spans breakfast, lunch and dinner, no
// matter which slot is being rendered.
type MealListProjection struct {
	Slot       models.MealSlot
	Entries    []models.Meal
	GrandTotal int
}

// MealList projects a slot's entries in stored order together with the
// document-wide calorie total.
func MealList(doc *models.Document, slot models.MealSlot) MealListProjection {
	return MealListProjection{
		Slot:       slot,
		Entries:    doc.Meals[slot],
		GrandTotal: GrandTotalCalories(doc),
	}
}

// GrandTotalCalories sums calories across all three slots.
func GrandTotalCalories(doc *models.Document) int {
	total := 0
	for _, m := range doc.AllMeals() {
		total += m.Calories
	}
	return total
}
