// This package provides the easing curves and the tween scheduler
// used by altercam for camera view transitions and effect weight
// crossfades.
//
// Tweens are not driven by a clock of their own. The owner advances
// them with an explicit delta time once per tick and inspects which
// tweens completed afterwards, so there are no callbacks to register
// and no goroutines involved.
package tween

import "math"

// Maps linear progress in [0, 1] to eased progress. All built-in
// curves return exactly 0 and 1 at the endpoints and stay within
// [0, 1] in between.
type Ease func(t float64) float64

var (
	// Constant rate of change.
	Linear Ease = func(t float64) float64 { return t }

	// Gentle sine acceleration and deceleration. This is the default
	// curve for both camera transitions and effect crossfades.
	InOutSine Ease = func(t float64) float64 {
		return -(math.Cos(math.Pi*t) - 1) / 2
	}

	// Cubic acceleration and deceleration, a bit snappier than InOutSine.
	InOutCubic Ease = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		k := -2*t + 2
		return 1 - k*k*k/2
	}

	// Hermite smoothstep (3t² - 2t³).
	Smoothstep Ease = func(t float64) float64 {
		return t * t * (3 - 2*t)
	}
)

func clamp01(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t
}
