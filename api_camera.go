package altercam

import (
	"image"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/altercam/effect"
	"github.com/edwinsyarief/altercam/grading"
)

// The final camera placement for the current tick, after composing
// the viewpoint transition with the blended camera effects.
type Transform struct {
	// World coordinates of the view center.
	Position ebimath.Vector

	// Rotation around the view center, in degrees.
	Rotation float64

	// Half of the visible world height, in world units.
	OrthoSize float64

	// Effective hue rotation of the color grading, in degrees.
	HueShift float64
}

// See [Camera]().
type AccessorCamera struct{}

// Provides access to camera-related functionality in a structured
// manner. Use through method chaining, e.g.:
//
//	altercam.Camera().SetEffect(effect.Drunk)
func Camera() AccessorCamera { return AccessorCamera{} }

// --- effects ---

// Switches the active camera effect. The previous effect fades out
// and the new one fades in over [Config].EffectTransition seconds.
//
// Switching to the already active effect does nothing. Switching
// while a crossfade is in progress retargets the weights from their
// current values. Panics if the kind is not a known [effect.Kind].
//
// Must only be called during initialization or [Game].Update().
func (AccessorCamera) SetEffect(kind effect.Kind) {
	pkgController.cameraSetEffect(kind)
}

// Returns the active camera effect.
func (AccessorCamera) GetEffect() effect.Kind {
	return pkgController.cameraGetEffect()
}

// Returns the current blend weight of the given effect, in [0, 1].
func (AccessorCamera) EffectWeight(kind effect.Kind) float64 {
	return pkgController.cameraEffectWeight(kind)
}

// Returns whether an effect crossfade is in progress.
func (AccessorCamera) IsBlending() bool {
	return pkgController.cameraIsBlending()
}

// Returns the color grading volume for the current tick.
func (AccessorCamera) Grading() grading.Volume {
	return pkgController.cameraGrading()
}

// --- viewpoints ---

// Immediately places the camera on the intro viewpoint and leaves
// gameplay mode. Cancels any running viewpoint transition.
func (AccessorCamera) TeleportToIntro() {
	pkgController.cameraTeleportToIntro()
}

// Starts a transition to the intro viewpoint. Camera effects keep
// moving the camera until the transition completes.
func (AccessorCamera) GoToIntro() {
	pkgController.cameraGoToIntro()
}

// Starts a transition to the gameplay viewpoint. Camera effects
// start moving the camera once the transition completes.
func (AccessorCamera) GoToGameplay() {
	pkgController.cameraGoToGameplay()
}

// Returns whether the camera is in gameplay mode. Only in gameplay
// mode do camera effects alter the camera position, rotation and size.
func (AccessorCamera) InGameplay() bool {
	return pkgController.cameraInGameplay()
}

// Returns whether a viewpoint transition is in progress.
func (AccessorCamera) IsTransitioning() bool {
	return pkgController.cameraIsTransitioning()
}

// --- output ---

// Returns the camera transform for the current tick.
func (AccessorCamera) Transform() Transform {
	return pkgController.cameraTransform()
}

// Returns the world area that has to be drawn on [Game].Draw()'s
// canvas. The area contains the whole rotated view, so it's slightly
// bigger than the visible region while the camera is rotated.
func (AccessorCamera) Area() image.Rectangle {
	return pkgController.cameraAreaGet()
}
