package altercam

import (
	"log"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/altercam/effect"
	"github.com/edwinsyarief/altercam/grading"
	"github.com/edwinsyarief/altercam/tween"
)

// Crossfades between camera effects. The current effect's weight
// is the blend factor between the previous and current outputs.
//
// Each effect weight is driven by its own named tween, so switching
// effects mid-transition simply retargets the weights involved while
// the rest keep fading towards zero.
type blendState struct {
	effects  [effect.KindCount]effect.Effect
	current  effect.Kind
	previous effect.Kind
	duration float64
	tweens   tween.Scheduler // weight tweens, named after their kind
}

func newBlendState(cfg *Config) blendState {
	var state blendState
	for _, kind := range effect.Kinds() {
		state.effects[kind] = effect.New(kind, cfg.Oscillator(kind))
	}
	state.effects[effect.None].SetWeight(1)
	state.current, state.previous = effect.None, effect.None
	state.duration = cfg.EffectTransition
	return state
}

// Returns whether a crossfade was started.
func (self *blendState) SetMode(kind effect.Kind) bool {
	if !kind.Valid() {
		panic(errInvalidKind)
	}
	if kind == self.current {
		return false
	}

	log.Printf("altercam: switching camera effect %s -> %s", self.current, kind)
	self.previous, self.current = self.current, kind
	self.fadeWeight(self.previous, 0)
	self.fadeWeight(self.current, 1)
	return true
}

func (self *blendState) fadeWeight(kind effect.Kind, target float64) {
	from := self.effects[kind].Weight()
	self.tweens.Start(kind.String(), from, target, self.duration, tween.InOutSine)
}

func (self *blendState) Tick(dt float64) {
	self.tweens.Advance(dt)
	for i := range self.effects {
		eff := &self.effects[i]
		if weight, found := self.tweens.Value(eff.Kind().String()); found {
			eff.SetWeight(weight)
		}
		eff.Update(dt)
	}
}

// Returns the blended position offset, rotation offset and size scale.
func (self *blendState) Composite() (position ebimath.Vector, rotation, sizeScale float64) {
	prev, curr := &self.effects[self.previous], &self.effects[self.current]
	t := curr.Weight()
	position = lerpVector(prev.Position(), curr.Position(), t)
	rotation = lerp(prev.Rotation(), curr.Rotation(), t)
	sizeScale = lerp(prev.SizeScale(), curr.SizeScale(), t)
	return position, rotation, sizeScale
}

// Returns the color grading volume, driven by the Mushrooms effect.
func (self *blendState) Grading() grading.Volume {
	mushrooms := &self.effects[effect.Mushrooms]
	return grading.Volume{HueShift: mushrooms.HueShift(), Weight: mushrooms.Weight()}
}

func (self *blendState) IsBlending() bool {
	return self.tweens.AnyActive()
}

func (self *blendState) Effect(kind effect.Kind) *effect.Effect {
	if !kind.Valid() {
		panic(errInvalidKind)
	}
	return &self.effects[kind]
}
