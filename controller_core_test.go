package altercam

import (
	"image"
	"math"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/altercam/effect"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestTickDelta(t *testing.T) {
	cases := []struct {
		name      string
		tps       int
		actualTPS float64
		want      float64
	}{
		{"fixed_rate", 60, 0, 1.0 / 60.0},
		{"fixed_rate_ignores_actual", 30, 144, 1.0 / 30.0},
		{"sync_with_fps", ebiten.SyncWithFPS, 144, 1.0 / 144.0},
		{"sync_with_fps_unmeasured", ebiten.SyncWithFPS, 0, 1.0 / defaultTPS},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tickDelta(c.tps, c.actualTPS)
			if math.Abs(got-c.want) > 1e-15 {
				t.Fatalf("tickDelta(%d, %v) = %v, want %v", c.tps, c.actualTPS, got, c.want)
			}
			if got <= 0 {
				t.Fatalf("tick delta must be positive, got %v", got)
			}
		})
	}
}

func TestUncappedTickRateCompletesTransitions(t *testing.T) {
	for _, actualTPS := range []float64{0, 144} {
		dt := tickDelta(ebiten.SyncWithFPS, actualTPS)
		c := newTestController(DefaultConfig())
		c.cameraSetEffect(effect.Mushrooms)
		c.cameraGoToGameplay()

		steps := int(math.Ceil(c.config.ViewTransition/dt)) + 1
		for i := 0; i < steps; i++ {
			c.tick(dt)
		}
		if c.cameraIsBlending() || c.cameraIsTransitioning() {
			t.Fatalf("transitions should complete with dt %v", dt)
		}
		if !c.cameraInGameplay() || c.cameraEffectWeight(effect.Mushrooms) != 1 {
			t.Fatalf("expected gameplay with Mushrooms at full weight (dt %v)", dt)
		}
		if hue := c.blend.Effect(effect.Mushrooms).HueShift(); hue <= 0 {
			t.Fatalf("hue shift should accumulate forwards, got %v (dt %v)", hue, dt)
		}
	}
}

func TestCameraGeoM(t *testing.T) {
	target := image.Rect(10, 20, 330, 200) // 320x180, offset origin
	centerX, centerY := 10+160.0, 20+90.0
	origin := image.Pt(-100, -60)

	cases := []struct {
		name           string
		transform      Transform
		worldX, worldY float64
		wantX, wantY   float64
	}{
		{"position_to_center", Transform{Position: ebimath.V(12, -8), OrthoSize: 90}, 12, -8, centerX, centerY},
		{"ortho_to_half_height", Transform{Position: ebimath.V(12, -8), OrthoSize: 45}, 12, -8 + 45, centerX, centerY + 90},
		{"ortho_above_center", Transform{Position: ebimath.V(0, 0), OrthoSize: 60}, 0, -60, centerX, centerY - 90},
		{"quarter_turn", Transform{Position: ebimath.V(0, 0), Rotation: 90, OrthoSize: 30}, 30, 0, centerX, centerY - 90},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			geom := cameraGeoM(origin, c.transform, target)
			// canvas pixels are world units relative to the canvas origin
			x, y := geom.Apply(c.worldX-float64(origin.X), c.worldY-float64(origin.Y))
			if math.Abs(x-c.wantX) > 1e-9 || math.Abs(y-c.wantY) > 1e-9 {
				t.Fatalf("world (%v, %v) mapped to (%v, %v), want (%v, %v)", c.worldX, c.worldY, x, y, c.wantX, c.wantY)
			}
		})
	}
}
