// This package implements the color grading post-process applied
// by altercam after projecting the logical canvas.
//
// A [Volume] works like a post-processing volume on other engines:
// it holds a parameter (here, a hue shift) and a weight that controls
// how much of it reaches the final image.
package grading

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// A hue shift post-process with a blend weight.
type Volume struct {
	// Hue shift in degrees. May grow without bound; the effective
	// shift wraps around every 360 degrees.
	HueShift float64

	// Contribution of the volume in [0, 1]. Values outside the
	// range are clamped when computing the effective hue.
	Weight float64
}

// Returns the hue rotation that reaches the image, in degrees within
// [-180, 180). The accumulated shift is wrapped first and weighted
// afterwards, so fading a volume out never spins through full turns.
func (self Volume) EffectiveHue() float64 {
	weight := min(max(self.Weight, 0), 1)
	if weight == 0 {
		return 0
	}
	return wrapDegrees(self.HueShift) * weight
}

// Returns whether the volume leaves colors untouched.
func (self Volume) IsIdentity() bool {
	return self.EffectiveHue() == 0
}

// Returns the color matrix for the volume.
func (self Volume) ColorM() colorm.ColorM {
	var cm colorm.ColorM
	if hue := self.EffectiveHue(); hue != 0 {
		cm.ChangeHSV(hue*math.Pi/180.0, 1, 1)
	}
	return cm
}

// Draws source into target with the given transform and the volume's
// color grading applied.
func (self Volume) Draw(target, source *ebiten.Image, geom ebiten.GeoM, filter ebiten.Filter) {
	var opts colorm.DrawImageOptions
	opts.GeoM = geom
	opts.Filter = filter
	colorm.DrawImage(target, source, self.ColorM(), &opts)
}

func wrapDegrees(degrees float64) float64 {
	wrapped := math.Mod(degrees+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}
