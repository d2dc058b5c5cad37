package utils

import (
	"image"
	"image/color"

	"github.com/edwinsyarief/altercam/internal"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Syntax sugar for [ebiten.Image.SubImage]() passing explicit
// coordinates instead of [image.Rectangle] and returning [*ebiten.Image]
// instead of [image.Image].
func SubImage(source *ebiten.Image, minX, minY, maxX, maxY int) *ebiten.Image {
	return source.SubImage(image.Rect(minX, minY, maxX, maxY)).(*ebiten.Image)
}

// Similar to [ebiten.Image.Fill](), but with alpha blending.
// See also [FillOverRect]().
func FillOver(target *ebiten.Image, fillColor color.Color) {
	FillOverRect(target, target.Bounds(), fillColor)
}

// Similar to [ebiten.Image.Fill](), but with alpha blending
// and explicit target bounds.
func FillOverRect(target *ebiten.Image, bounds image.Rectangle, fillColor color.Color) {
	vector.DrawFilledRect(
		target,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()),
		fillColor, false,
	)
}

// Create a low resolution image from a simple mask. The value
// 0 is always reserved for transparent, and higher values will
// index the given colors. If no colors are given, 1 will be
// white by default. Example usage:
//
//	heart := utils.MaskToImage(7, []uint8{
//	    0, 1, 1, 0, 1, 1, 0,
//	    1, 1, 1, 1, 1, 1, 1,
//	    1, 1, 1, 1, 1, 1, 1,
//	    0, 1, 1, 1, 1, 1, 0,
//	    0, 0, 1, 1, 1, 0, 0,
//	    0, 0, 0, 1, 0, 0, 0,
//	}, utils.RGB(255, 0, 0))
func MaskToImage(width int, mask []uint8, colors ...color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(MaskToRGBA(width, mask, colors...))
}

// Same as [MaskToImage](), but returning a CPU-side [*image.RGBA].
// Panics if the width doesn't divide the mask evenly or if a mask
// value has no matching color.
func MaskToRGBA(width int, mask []uint8, colors ...color.RGBA) *image.RGBA {
	if width <= 0 {
		panic("expected width > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}
	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for index, value := range mask {
		if value == 0 {
			continue
		}
		if int(value) > len(colors) {
			panic("mask value without matching color")
		}
		clr := colors[value-1]
		pixelIndex := index << 2
		rgba.Pix[pixelIndex+0] = clr.R
		rgba.Pix[pixelIndex+1] = clr.G
		rgba.Pix[pixelIndex+2] = clr.B
		rgba.Pix[pixelIndex+3] = clr.A
	}
	return rgba
}

// Converts global world coordinates to coordinates on the world
// canvas received by Game.Draw().
func ToCanvasCoords(x, y float64) (float64, float64) {
	origin := internal.BridgedCameraOrigin
	return x - float64(origin.X), y - float64(origin.Y)
}

// Returns the GeoM that would be used to draw the given image
// on the world canvas at the global world coordinates (x, y).
func GeoMAt(source *ebiten.Image, x, y float64) ebiten.GeoM {
	var geom ebiten.GeoM
	cx, cy := ToCanvasCoords(x, y)
	// * origin is not automatically applied when using
	//   an image as source, so we need to add it manually
	srcMin := source.Bounds().Min
	geom.Translate(cx+float64(srcMin.X), cy+float64(srcMin.Y))
	return geom
}

// Returns the image options with a GeoM set up to draw the
// given image at the global world coordinates (x, y).
// Makes basic image drawing simpler. Example code:
//
//	opts := utils.DrawImageOptionsAt(myImage, 8, 8)
//	canvas.DrawImage(myImage, &opts)
func DrawImageOptionsAt(source *ebiten.Image, x, y float64) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	opts.GeoM = GeoMAt(source, x, y)
	return opts
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
