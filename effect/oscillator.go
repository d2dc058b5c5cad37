package effect

import (
	ebimath "github.com/edwinsyarief/ebi-math"
)

// Tuning parameters for an effect. Values are not validated: out of
// range values make the camera look bad, but nothing breaks.
//
// Speeds are angular frequencies in radians per second, amplitudes are
// world units (position), degrees (rotation) or a fraction of the base
// orthographic size (scale).
type Oscillator struct {
	PositionAmplitude ebimath.Vector `yaml:"position_amplitude"`

	// Mushrooms only reads X and uses it for both axes.
	PositionSpeed ebimath.Vector `yaml:"position_speed"`

	RotationAmplitude float64 `yaml:"rotation_amplitude"`
	RotationSpeed     float64 `yaml:"rotation_speed"`
	ScaleAmplitude    float64 `yaml:"scale_amplitude"`
	ScaleSpeed        float64 `yaml:"scale_speed"`

	// Hue shift rate in degrees per second. Only used by Mushrooms.
	HueSpeed float64 `yaml:"hue_speed"`
}

// Returns the default oscillator for the given kind. Defaults are
// tuned for a 320x180 pixel art canvas (one world unit per pixel).
// [None] returns the zero oscillator.
func DefaultOscillator(kind Kind) Oscillator {
	switch kind {
	case None:
		return Oscillator{}
	case Drunk:
		return Oscillator{
			PositionAmplitude: ebimath.V(6, 3),
			PositionSpeed:     ebimath.V(0.9, 1.3),
			RotationAmplitude: 3,
			RotationSpeed:     0.7,
			ScaleAmplitude:    0.04,
			ScaleSpeed:        0.5,
		}
	case Intoxicated:
		return Oscillator{
			PositionAmplitude: ebimath.V(10, 8),
			PositionSpeed:     ebimath.V(2.1, 1.7),
			RotationAmplitude: 6,
			RotationSpeed:     1.9,
			ScaleAmplitude:    0.08,
			ScaleSpeed:        1.3,
		}
	case Mushrooms:
		return Oscillator{
			PositionAmplitude: ebimath.V(3.2, 3.2),
			PositionSpeed:     ebimath.V(1, 1),
			RotationAmplitude: 1,
			RotationSpeed:     1,
			ScaleAmplitude:    0.1,
			ScaleSpeed:        1,
			HueSpeed:          24,
		}
	default:
		panic("invalid effect.Kind")
	}
}
