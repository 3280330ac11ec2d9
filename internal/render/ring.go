package render

import (
	"math"
	"time"

	"github.com/riteshkr04/fittrack/internal/constants"
)

// RingProjection describes a progress ring: the clamped percentage, the
// arc geometry for the stroke offset, and the count-up animation the view
// layer drives with its own timer.
type RingProjection struct {
	Value         int
	Goal          int
	Percent       float64 // clamped to [0, 100]
	Circumference float64
	Offset        float64
	CountDuration time.Duration
	TickInterval  time.Duration
}

// Ring projects a current/goal pair onto ring geometry. Over-achievement
// is allowed in the data; the displayed percentage caps at 100.
func Ring(value, goal int) RingProjection {
	percent := 0.0
	if goal > 0 {
		percent = float64(value) / float64(goal) * 100
	}
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	circumference := 2 * math.Pi * constants.RingRadius
	offset := circumference - percent/100*circumference

	return RingProjection{
		Value:         value,
		Goal:          goal,
		Percent:       percent,
		Circumference: circumference,
		Offset:        offset,
		CountDuration: constants.CounterDuration,
		TickInterval:  constants.CounterTickInterval,
	}
}

// CounterSteps returns the rounded values the numeric label walks through
// while counting up from 0 over the projection's duration. A zero value
// yields a single step that stays at 0.
func (p RingProjection) CounterSteps() []int {
	if p.Value <= 0 {
		return []int{0}
	}

	ticks := int(p.CountDuration / p.TickInterval)
	if ticks < 1 {
		ticks = 1
	}
	increment := float64(p.Value) / float64(ticks)

	var steps []int
	current := 0.0
	for {
		current += increment
		if current >= float64(p.Value) {
			steps = append(steps, p.Value)
			return steps
		}
		steps = append(steps, int(math.Round(current)))
	}
}
