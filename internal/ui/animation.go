// Package ui provides shared animation primitives for the deck.
package ui

import "time"

// Animation tracks the progress of a single timed transition.
type Animation struct {
	StartTime time.Time
	Duration  time.Duration
	Progress  float64
	Complete  bool
}

// Update advances the animation to the given wall time and reports whether
// it is still running. A zero duration completes immediately, which is how
// disabled animations become instant transitions.
func (a *Animation) Update(now time.Time) bool {
	if a.Complete {
		return false
	}
	if a.Duration <= 0 {
		a.Progress = 1.0
		a.Complete = true
		return false
	}
	elapsed := now.Sub(a.StartTime)
	if elapsed >= a.Duration {
		a.Progress = 1.0
		a.Complete = true
		return false
	}
	a.Progress = float64(elapsed) / float64(a.Duration)
	return true
}

// Eased returns the ease-out-cubic interpolation of the current progress.
func (a *Animation) Eased() float64 {
	inv := 1.0 - a.Progress
	return 1.0 - inv*inv*inv
}
