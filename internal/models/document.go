package models

import "time"

// Document is the aggregate root: one instance per session, constructed
// from built-in defaults, overlaid with whatever the store holds, and
// mutated in place by dashboard operations.
type Document struct {
	Wellness       Wellness            `json:"wellness"`
	Activities     []Activity          `json:"activities"`
	Meals          map[MealSlot][]Meal `json:"meals"`
	WeeklyActivity WeeklySeries        `json:"weeklyActivity"`
	WeeklyCalories WeeklySeries        `json:"weeklyCalories"`
}

// DefaultDocument returns the built-in sample data the dashboard starts
// from when nothing has been persisted yet.
func DefaultDocument() *Document {
	now := time.Now().UnixMilli()
	return &Document{
		Wellness: Wellness{
			Steps:        7234,
			StepsGoal:    10000,
			Calories:     1850,
			CaloriesGoal: 2500,
			Water:        6,
			WaterGoal:    8,
		},
		Activities: []Activity{
			{ID: 1, Name: "Morning Run", Duration: 30, Calories: 300, Time: TimeMorning, Timestamp: now},
			{ID: 2, Name: "Yoga Session", Duration: 45, Calories: 150, Time: TimeMorning, Timestamp: now},
			{ID: 3, Name: "Cycling", Duration: 60, Calories: 500, Time: TimeAfternoon, Timestamp: now},
			{ID: 4, Name: "Swimming", Duration: 40, Calories: 400, Time: TimeEvening, Timestamp: now},
		},
		Meals: map[MealSlot][]Meal{
			SlotBreakfast: {
				{ID: 1, Name: "Oatmeal with Berries", Calories: 320},
				{ID: 2, Name: "Greek Yogurt", Calories: 150},
			},
			SlotLunch: {
				{ID: 3, Name: "Grilled Chicken Salad", Calories: 450},
				{ID: 4, Name: "Quinoa Bowl", Calories: 380},
			},
			SlotDinner: {
				{ID: 5, Name: "Salmon with Vegetables", Calories: 520},
				{ID: 6, Name: "Brown Rice", Calories: 210},
			},
		},
		WeeklyActivity: WeeklySeries{
			"Mon": 45, "Tue": 60, "Wed": 30, "Thu": 75, "Fri": 50, "Sat": 90, "Sun": 40,
		},
		WeeklyCalories: WeeklySeries{
			"Mon": 450, "Tue": 600, "Wed": 300, "Thu": 750, "Fri": 500, "Sat": 900, "Sun": 400,
		},
	}
}

// AllMeals returns every meal across the three slots in fixed slot order.
func (d *Document) AllMeals() []Meal {
	var meals []Meal
	for _, slot := range MealSlots() {
		meals = append(meals, d.Meals[slot]...)
	}
	return meals
}

// MaxActivityID returns the largest activity id present, or 0.
func (d *Document) MaxActivityID() int {
	max := 0
	for _, a := range d.Activities {
		if a.ID > max {
			max = a.ID
		}
	}
	return max
}

// MaxMealID returns the largest meal id across all slots, or 0.
func (d *Document) MaxMealID() int {
	max := 0
	for _, m := range d.AllMeals() {
		if m.ID > max {
			max = m.ID
		}
	}
	return max
}
