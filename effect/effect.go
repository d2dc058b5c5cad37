package effect

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// A camera effect instance. Create with [New]().
//
// The effect clock only runs while the weight is above zero. An
// effect at zero weight is frozen: its outputs keep the values they
// had when the weight last dropped to zero, and the hue shift stops
// accumulating. The blend controller never reads a zero-weight
// effect with a non-zero factor, so frozen outputs are never visible.
type Effect struct {
	kind       Kind
	oscillator Oscillator
	weight     float64
	clock      float64
	position   ebimath.Vector
	rotation   float64
	sizeScale  float64
	hueShift   float64
}

// Creates an effect of the given kind at zero weight. The oscillator
// is copied and can't be changed afterwards. Panics on unknown kinds.
func New(kind Kind, oscillator Oscillator) Effect {
	if !kind.Valid() {
		panic("can't create effect with invalid effect.Kind")
	}
	if kind == None {
		oscillator = Oscillator{}
	}
	return Effect{kind: kind, oscillator: oscillator, sizeScale: 1}
}

// Returns the effect kind.
func (self *Effect) Kind() Kind { return self.kind }

// Returns the effect oscillator.
func (self *Effect) Oscillator() Oscillator { return self.oscillator }

// Returns the blend weight in [0, 1].
func (self *Effect) Weight() float64 { return self.weight }

// Sets the blend weight. Values are clamped to [0, 1].
func (self *Effect) SetWeight(weight float64) {
	self.weight = min(max(weight, 0), 1)
}

// Returns whether the effect clock is running.
func (self *Effect) Active() bool { return self.weight > 0 }

// Returns the effect clock in seconds.
func (self *Effect) Clock() float64 { return self.clock }

// Returns the position offset in world units.
func (self *Effect) Position() ebimath.Vector { return self.position }

// Returns the rotation offset in degrees.
func (self *Effect) Rotation() float64 { return self.rotation }

// Returns the orthographic size multiplier.
func (self *Effect) SizeScale() float64 { return self.sizeScale }

// Returns the accumulated hue shift in degrees. Only Mushrooms
// accumulates hue; it grows without bound while the effect runs.
func (self *Effect) HueShift() float64 { return self.hueShift }

// Advances the effect clock by dt seconds and recomputes the outputs.
// Does nothing while the weight is zero.
func (self *Effect) Update(dt float64) {
	if !self.Active() {
		return
	}
	self.clock += dt

	osc := &self.oscillator
	switch self.kind {
	case None:
		// identity
	case Drunk, Intoxicated:
		self.oscillate(osc.PositionSpeed.X, osc.PositionSpeed.Y)
	case Mushrooms:
		self.oscillate(osc.PositionSpeed.X, osc.PositionSpeed.X)
		self.hueShift += dt * osc.HueSpeed
	default:
		panic("invalid effect.Kind")
	}
}

func (self *Effect) oscillate(speedX, speedY float64) {
	t, osc := self.clock, &self.oscillator
	self.position = ebimath.V(
		math.Sin(t*speedX)*osc.PositionAmplitude.X,
		math.Sin(t*speedY)*osc.PositionAmplitude.Y,
	)
	self.rotation = math.Sin(t*osc.RotationSpeed) * osc.RotationAmplitude
	self.sizeScale = 1 + math.Sin(t*osc.ScaleSpeed)*osc.ScaleAmplitude
}
