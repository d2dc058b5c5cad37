package altercam

import (
	"image/color"

	"github.com/edwinsyarief/altercam/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Offscreens are logically sized canvases that you can draw to
// and later project to high resolution space. Unlike the world
// canvas received by [Game].Draw(), offscreens are not affected
// by the camera, which makes them handy for UI and debug text.
//
// Creating an offscreen involves creating an [*ebiten.Image], so
// you want to store and reuse them. They also have to be manually
// cleared when required.
type Offscreen struct {
	canvas *ebiten.Image
	width  int
	height int
}

// Creates a new offscreen with the given logical size.
//
// Never invoke this per frame, always reuse offscreens.
func NewOffscreen(width, height int) *Offscreen {
	return &Offscreen{
		canvas: ebiten.NewImage(width, height),
		width:  width, height: height,
	}
}

// Returns the underlying canvas for the offscreen.
func (self *Offscreen) Target() *ebiten.Image {
	return self.canvas
}

// Returns the size of the offscreen.
func (self *Offscreen) Size() (width, height int) {
	return self.width, self.height
}

// Equivalent to [ebiten.Image.DrawImage]().
func (self *Offscreen) Draw(source *ebiten.Image, opts *ebiten.DrawImageOptions) {
	self.canvas.DrawImage(source, opts)
}

// Similar to [ebiten.Image.Fill](), but with alpha blending.
func (self *Offscreen) Coat(fillColor color.Color) {
	utils.FillOver(self.canvas, fillColor)
}

// Clears the underlying offscreen canvas.
func (self *Offscreen) Clear() {
	self.canvas.Clear()
}

// Projects the offscreen stretched over the whole target. The target
// is usually the viewport received by [OverlayDrawer].DrawOverlay(),
// which has already been cropped to the game's aspect ratio.
func (self *Offscreen) Project(target *ebiten.Image) {
	pkgController.project(self.canvas, target)
}
