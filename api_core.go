package altercam

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- game ---

// The game interface for altercam, which is the equivalent to
// [ebiten.Game] on Ebitengine but without the Layout() method.
type Game interface {
	// Updates the game logic. Camera effect switches and viewpoint
	// transitions requested here take effect on the same tick.
	Update() error

	// Draws the world. The canvas covers the world area returned by
	// [AccessorCamera.Area](), one pixel per world unit; use
	// [utils.GeoMAt]() to position things in world coordinates.
	// altercam then projects the canvas through the camera transform.
	Draw(worldCanvas *ebiten.Image)
}

// Optional interface for games that need to draw camera-independent
// content (UI, debug info) after the world has been projected. The
// viewport is the active high resolution area of the screen.
type OverlayDrawer interface {
	DrawOverlay(viewport *ebiten.Image)
}

// Equivalent to [ebiten.RunGame](), but expecting an altercam [Game]
// instead of an [ebiten.Game].
//
// Will panic if invoked before [SetResolution]().
func Run(game Game) error {
	return pkgController.run(game)
}

// --- core ---

// Returns the game's base resolution. See [SetResolution]()
// for more details.
func GetResolution() (width, height int) {
	return pkgController.getResolution()
}

// Sets the game's base resolution. This defines the game's aspect
// ratio; the visible world height is given by the camera orthographic
// size, not by the resolution.
func SetResolution(width, height int) {
	pkgController.setResolution(width, height)
}

// Replaces the camera configuration. This resets the camera: the
// intro viewpoint becomes active, the effect is reset to
// [effect.None] and all transitions are dropped.
//
// Meant to be called once during initialization.
func SetConfig(config Config) {
	pkgController.setConfig(config)
}

// Returns the current camera configuration.
func GetConfig() Config {
	return pkgController.getConfig()
}

// Returns whether a layout change has happened on the current tick.
// Layout changes happen whenever the game window is resized, the game
// switches between windowed and fullscreen modes, or the device scale
// factor changes.
func LayoutHasChanged() bool {
	return pkgController.layoutHasChanged
}

// --- ticks ---

// See [Tick]().
type AccessorTick struct{}

// Provides access to game tick functions in a structured
// manner. Use through method chaining, e.g.:
//
//	currentTick := altercam.Tick().Now()
func Tick() AccessorTick { return AccessorTick{} }

// Returns the current tick.
func (AccessorTick) Now() uint64 {
	return pkgController.tickNow()
}

// Returns the updates per second. This is just [ebiten.TPS]().
func (AccessorTick) UPS() int {
	return ebiten.TPS()
}

// Returns the delta time in seconds that altercam advances the
// camera by on each update. With [ebiten.SyncWithFPS] this follows
// [ebiten.ActualTPS]().
func (AccessorTick) Delta() float64 {
	return tickDelta(ebiten.TPS(), ebiten.ActualTPS())
}
