package render

import (
	"math"
	"testing"

	"github.com/riteshkr04/fittrack/internal/constants"
)

func TestRingClampsPercentage(t *testing.T) {
	p := Ring(15000, 10000)
	if p.Percent != 100 {
		t.Errorf("Percent = %v, want 100 (over-achievement clamps)", p.Percent)
	}

	p = Ring(5000, 10000)
	if p.Percent != 50 {
		t.Errorf("Percent = %v, want 50", p.Percent)
	}

	p = Ring(0, 10000)
	if p.Percent != 0 {
		t.Errorf("Percent = %v, want 0", p.Percent)
	}
}

func TestRingZeroGoal(t *testing.T) {
	p := Ring(100, 0)
	if p.Percent != 0 {
		t.Errorf("Percent with zero goal = %v, want 0", p.Percent)
	}
}

func TestRingArcGeometry(t *testing.T) {
	wantCircumference := 2 * math.Pi * constants.RingRadius

	p := Ring(10000, 10000)
	if math.Abs(p.Circumference-wantCircumference) > 1e-9 {
		t.Errorf("Circumference = %v, want %v", p.Circumference, wantCircumference)
	}
	// Full ring: no offset
	if math.Abs(p.Offset) > 1e-9 {
		t.Errorf("Offset at 100%% = %v, want 0", p.Offset)
	}

	p = Ring(5000, 10000)
	if math.Abs(p.Offset-wantCircumference/2) > 1e-9 {
		t.Errorf("Offset at 50%% = %v, want %v", p.Offset, wantCircumference/2)
	}

	p = Ring(0, 10000)
	if math.Abs(p.Offset-wantCircumference) > 1e-9 {
		t.Errorf("Offset at 0%% = %v, want full circumference %v", p.Offset, wantCircumference)
	}
}

func TestCounterSteps(t *testing.T) {
	p := Ring(0, 10000)
	steps := p.CounterSteps()
	if len(steps) != 1 || steps[0] != 0 {
		t.Errorf("CounterSteps() for zero value = %v, want [0]", steps)
	}

	p = Ring(7234, 10000)
	steps = p.CounterSteps()
	if steps[len(steps)-1] != 7234 {
		t.Errorf("final counter step = %d, want 7234", steps[len(steps)-1])
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] < steps[i-1] {
			t.Fatalf("counter steps decrease at %d: %d -> %d", i, steps[i-1], steps[i])
		}
	}

	wantTicks := int(constants.CounterDuration / constants.CounterTickInterval)
	if len(steps) > wantTicks {
		t.Errorf("counter runs %d ticks, want at most %d", len(steps), wantTicks)
	}
}
