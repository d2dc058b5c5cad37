package utils

import (
	"image"
	"testing"

	"github.com/edwinsyarief/altercam/internal"
)

func TestMaskToRGBA(t *testing.T) {
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)
	img := MaskToRGBA(3, []uint8{
		0, 1, 0,
		2, 0, 1,
	}, red, blue)

	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 0); got != red {
		t.Fatalf("pixel (1, 0) = %v, want %v", got, red)
	}
	if got := img.RGBAAt(0, 1); got != blue {
		t.Fatalf("pixel (0, 1) = %v, want %v", got, blue)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("pixel (0, 0) should be transparent, got %v", got)
	}
}

func TestMaskToRGBAPanics(t *testing.T) {
	cases := []struct {
		name  string
		width int
		mask  []uint8
	}{
		{"zero_width", 0, []uint8{1}},
		{"uneven_rows", 2, []uint8{1, 1, 1}},
		{"missing_color", 1, []uint8{2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			MaskToRGBA(c.width, c.mask)
		})
	}
}

func TestToCanvasCoords(t *testing.T) {
	prev := internal.BridgedCameraOrigin
	defer func() { internal.BridgedCameraOrigin = prev }()

	internal.BridgedCameraOrigin = image.Pt(-160, -90)
	x, y := ToCanvasCoords(10, 5.5)
	if x != 170 || y != 95.5 {
		t.Fatalf("ToCanvasCoords = (%v, %v), want (170, 95.5)", x, y)
	}
}
