package models

// Wellness holds the current/goal pairs shown as progress rings. Current
// values may exceed their goals; display clamping happens at render time.
type Wellness struct {
	Steps        int `json:"steps"`
	StepsGoal    int `json:"stepsGoal"`
	Calories     int `json:"calories"`
	CaloriesGoal int `json:"caloriesGoal"`
	Water        int `json:"water"`
	WaterGoal    int `json:"waterGoal"`
}

// IsZero reports whether no field of the snapshot is set. A persisted
// document that predates the wellness section decodes to the zero value,
// which the overlay merge treats as absent.
func (w Wellness) IsZero() bool {
	return w == Wellness{}
}
