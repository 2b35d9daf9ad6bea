package press

import "time"

const (
	// DefaultTapTimeout is the tap-confirmation delay used when
	// Timings.TapTimeout is zero.
	DefaultTapTimeout = 100 * time.Millisecond
	// DefaultPressedStateDuration is the minimum pressed-visible
	// duration used when Timings.PressedStateDuration is zero.
	DefaultPressedStateDuration = 64 * time.Millisecond
)

// Timings carries the two platform delays a Detector schedules with.
// The zero value selects the defaults.
type Timings struct {
	// TapTimeout is how long a pre-pressed candidate waits before the
	// press is confirmed.
	TapTimeout time.Duration
	// PressedStateDuration is the minimum time a press confirmed at
	// release stays active before the detector resets.
	PressedStateDuration time.Duration
}

func (t Timings) withDefaults() Timings {
	if t.TapTimeout <= 0 {
		t.TapTimeout = DefaultTapTimeout
	}
	if t.PressedStateDuration <= 0 {
		t.PressedStateDuration = DefaultPressedStateDuration
	}
	return t
}
