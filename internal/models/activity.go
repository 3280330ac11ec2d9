package models

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// TimesOfDay returns the allowed time-of-day labels in display order.
func TimesOfDay() []TimeOfDay {
	return []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening}
}

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return true
	}
	return false
}

type Activity struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"` // minutes
	Calories  int       `json:"calories"`
	Time      TimeOfDay `json:"time"`
	Timestamp int64     `json:"timestamp"` // unix milliseconds
}
