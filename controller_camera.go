package altercam

import (
	"image"
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/altercam/effect"
	"github.com/edwinsyarief/altercam/grading"
	"github.com/edwinsyarief/altercam/internal"
	"github.com/edwinsyarief/altercam/tween"
)

const (
	rigTweenX    = "x"
	rigTweenY    = "y"
	rigTweenSize = "ortho"
)

// Moves the camera base between the intro and gameplay viewpoints.
type rig struct {
	intro      Viewpoint
	gameplay   Viewpoint
	duration   float64
	base       Viewpoint
	inGameplay bool
	toGameplay bool // value for inGameplay once the running transition completes
	tweens     tween.Scheduler
}

func newRig(cfg *Config) rig {
	state := rig{intro: cfg.Intro, gameplay: cfg.Gameplay, duration: cfg.ViewTransition}
	state.TeleportToIntro()
	return state
}

func (self *rig) TeleportToIntro() {
	self.tweens.Remove(rigTweenX)
	self.tweens.Remove(rigTweenY)
	self.tweens.Remove(rigTweenSize)
	self.base = self.intro
	self.inGameplay, self.toGameplay = false, false
}

func (self *rig) GoToIntro() { self.transitionTo(self.intro, false) }
func (self *rig) GoToGameplay() { self.transitionTo(self.gameplay, true) }

func (self *rig) transitionTo(target Viewpoint, toGameplay bool) {
	self.toGameplay = toGameplay
	from := self.base
	self.tweens.Start(rigTweenX, from.Position.X, target.Position.X, self.duration, tween.InOutSine)
	self.tweens.Start(rigTweenY, from.Position.Y, target.Position.Y, self.duration, tween.InOutSine)
	self.tweens.Start(rigTweenSize, from.OrthoSize, target.OrthoSize, self.duration, tween.InOutSine)
}

func (self *rig) Tick(dt float64) {
	for _, name := range self.tweens.Advance(dt) {
		if name == rigTweenSize {
			self.inGameplay = self.toGameplay
		}
	}
	if x, found := self.tweens.Value(rigTweenX); found {
		self.base.Position.X = x
	}
	if y, found := self.tweens.Value(rigTweenY); found {
		self.base.Position.Y = y
	}
	if size, found := self.tweens.Value(rigTweenSize); found {
		self.base.OrthoSize = size
	}
}

func (self *rig) IsTransitioning() bool {
	return self.tweens.AnyActive()
}

// ---- controller camera methods ----

func (self *controller) cameraSetEffect(kind effect.Kind) {
	if self.inDraw {
		panic("can't switch camera effect" + errDrawMutation)
	}
	self.blend.SetMode(kind)
}

func (self *controller) cameraGetEffect() effect.Kind {
	return self.blend.current
}

func (self *controller) cameraEffectWeight(kind effect.Kind) float64 {
	return self.blend.Effect(kind).Weight()
}

func (self *controller) cameraIsBlending() bool {
	return self.blend.IsBlending()
}

func (self *controller) cameraTeleportToIntro() {
	if self.inDraw {
		panic("can't teleport camera" + errDrawMutation)
	}
	self.rig.TeleportToIntro()
	self.updateTransform()
}

func (self *controller) cameraGoToIntro() {
	if self.inDraw {
		panic("can't start camera transition" + errDrawMutation)
	}
	self.rig.GoToIntro()
}

func (self *controller) cameraGoToGameplay() {
	if self.inDraw {
		panic("can't start camera transition" + errDrawMutation)
	}
	self.rig.GoToGameplay()
}

func (self *controller) cameraInGameplay() bool {
	return self.rig.inGameplay
}

func (self *controller) cameraIsTransitioning() bool {
	return self.rig.IsTransitioning()
}

func (self *controller) cameraTransform() Transform {
	return self.transform
}

func (self *controller) cameraGrading() grading.Volume {
	return self.grading
}

func (self *controller) cameraAreaGet() image.Rectangle {
	return self.cameraArea
}

// ---- per tick update ----

func (self *controller) tick(dt float64) {
	self.blend.Tick(dt)
	self.rig.Tick(dt)
	self.updateTransform()
}

// Composes the rig base with the blended effect offsets. Effects
// only move the camera during gameplay; color grading applies always.
func (self *controller) updateTransform() {
	base := self.rig.base
	self.grading = self.blend.Grading()
	self.transform = Transform{
		Position:  base.Position,
		OrthoSize: base.OrthoSize,
		HueShift:  self.grading.EffectiveHue(),
	}
	if self.rig.inGameplay {
		offset, rotation, sizeScale := self.blend.Composite()
		self.transform.Position = ebimath.V(base.Position.X+offset.X, base.Position.Y+offset.Y)
		self.transform.Rotation = rotation
		self.transform.OrthoSize = base.OrthoSize * sizeScale
	}
	self.updateCameraArea()
}

// Returns the world area covered by the rotated view, as an axis
// aligned box.
func (self *controller) cameraAreaF64() (minX, minY, maxX, maxY float64) {
	if self.logicalHeight == 0 {
		pos := self.transform.Position
		return pos.X, pos.Y, pos.X, pos.Y
	}
	aspect := float64(self.logicalWidth) / float64(self.logicalHeight)
	halfHeight := self.transform.OrthoSize
	halfWidth := halfHeight * aspect
	radians := self.transform.Rotation * math.Pi / 180.0
	sin, cos := math.Abs(math.Sin(radians)), math.Abs(math.Cos(radians))
	boxHalfWidth := halfWidth*cos + halfHeight*sin
	boxHalfHeight := halfWidth*sin + halfHeight*cos

	pos := self.transform.Position
	return pos.X - boxHalfWidth, pos.Y - boxHalfHeight, pos.X + boxHalfWidth, pos.Y + boxHalfHeight
}

func (self *controller) updateCameraArea() {
	minX, minY, maxX, maxY := self.cameraAreaF64()
	self.cameraArea = image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	internal.BridgedCameraOrigin = self.cameraArea.Min
}
