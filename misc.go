package altercam

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

// Quick alias to the keys used by the default effect bindings.
// See [AccessorCamera.SetEffect]().
const (
	KeyEffectNone        = ebiten.KeyQ
	KeyEffectDrunk       = ebiten.KeyW
	KeyEffectIntoxicated = ebiten.KeyE
	KeyEffectMushrooms   = ebiten.KeyR
)

// --- helpers ---

// Tick rate assumed while the actual one can't be measured yet.
const defaultTPS = 60

// Exact at both ends: lerp(a, b, 0) == a and lerp(a, b, 1) == b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func lerpVector(a, b ebimath.Vector, t float64) ebimath.Vector {
	return ebimath.V(lerp(a.X, b.X, t), lerp(a.Y, b.Y, t))
}

// --- errors ---
const (
	errInvalidKind  = "can't switch camera effect to an invalid effect.Kind"
	errNotReady     = "must configure altercam with SetResolution(width, height) before Run()"
	errDrawMutation = " during draw stage"
)
