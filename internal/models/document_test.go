package models

import "testing"

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	if doc.Wellness.Steps != 7234 || doc.Wellness.StepsGoal != 10000 {
		t.Errorf("unexpected steps defaults: %d/%d", doc.Wellness.Steps, doc.Wellness.StepsGoal)
	}
	if len(doc.Activities) != 4 {
		t.Errorf("expected 4 sample activities, got %d", len(doc.Activities))
	}
	if got := len(doc.AllMeals()); got != 6 {
		t.Errorf("expected 6 sample meals, got %d", got)
	}
	for _, slot := range MealSlots() {
		if len(doc.Meals[slot]) != 2 {
			t.Errorf("expected 2 sample meals in %s, got %d", slot, len(doc.Meals[slot]))
		}
	}
	for _, day := range DayLabels() {
		if _, ok := doc.WeeklyActivity[day]; !ok {
			t.Errorf("weekly activity missing sample for %s", day)
		}
		if _, ok := doc.WeeklyCalories[day]; !ok {
			t.Errorf("weekly calories missing sample for %s", day)
		}
	}
}

func TestMaxIDs(t *testing.T) {
	doc := DefaultDocument()

	if got := doc.MaxActivityID(); got != 4 {
		t.Errorf("MaxActivityID() = %d, want 4", got)
	}
	if got := doc.MaxMealID(); got != 6 {
		t.Errorf("MaxMealID() = %d, want 6", got)
	}

	empty := &Document{Meals: map[MealSlot][]Meal{}}
	if got := empty.MaxActivityID(); got != 0 {
		t.Errorf("MaxActivityID() on empty document = %d, want 0", got)
	}
	if got := empty.MaxMealID(); got != 0 {
		t.Errorf("MaxMealID() on empty document = %d, want 0", got)
	}
}

func TestAllMealsOrder(t *testing.T) {
	doc := DefaultDocument()
	meals := doc.AllMeals()

	// Fixed slot order: breakfast entries first, dinner last
	if meals[0].Name != "Oatmeal with Berries" {
		t.Errorf("first meal = %q, want breakfast entry", meals[0].Name)
	}
	if meals[len(meals)-1].Name != "Brown Rice" {
		t.Errorf("last meal = %q, want dinner entry", meals[len(meals)-1].Name)
	}
}

func TestWeeklySeriesMax(t *testing.T) {
	s := WeeklySeries{"Mon": 45, "Sat": 90, "Sun": 40}
	if got := s.Max(); got != 90 {
		t.Errorf("Max() = %d, want 90", got)
	}
	if got := (WeeklySeries{}).Max(); got != 0 {
		t.Errorf("Max() on empty series = %d, want 0", got)
	}
}

func TestEnumValidity(t *testing.T) {
	for _, tod := range TimesOfDay() {
		if !tod.Valid() {
			t.Errorf("%q should be a valid time of day", tod)
		}
	}
	if TimeOfDay("midnight").Valid() {
		t.Error("\"midnight\" should not be a valid time of day")
	}

	for _, slot := range MealSlots() {
		if !slot.Valid() {
			t.Errorf("%q should be a valid slot", slot)
		}
	}
	if MealSlot("brunch").Valid() {
		t.Error("\"brunch\" should not be a valid slot")
	}
}
