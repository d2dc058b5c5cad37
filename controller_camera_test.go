package altercam

import (
	"math"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/altercam/effect"
)

func rigTestConfig() Config {
	cfg := DefaultConfig()
	cfg.Intro = Viewpoint{Position: ebimath.V(-40, 25), OrthoSize: 140}
	cfg.Gameplay = Viewpoint{Position: ebimath.V(12, -8), OrthoSize: 90}
	cfg.ViewTransition = 2.5
	return cfg
}

func TestRigStartsAtIntro(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	tr := c.cameraTransform()
	if tr.Position.X != -40 || tr.Position.Y != 25 || tr.OrthoSize != 140 || tr.Rotation != 0 {
		t.Fatalf("expected intro transform, got %+v", tr)
	}
	if c.cameraInGameplay() || c.cameraIsTransitioning() {
		t.Fatalf("camera should start idle at intro")
	}
}

func TestRigIntroToGameplay(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	c.cameraGoToGameplay()

	const dt = 0.25 // 2.5s in exact steps
	for i := 0; i < 9; i++ {
		c.tick(dt)
		if c.cameraInGameplay() {
			t.Fatalf("inGameplay flipped early at t=%v", float64(i+1)*dt)
		}
		tr := c.cameraTransform()
		if tr.OrthoSize > 140 || tr.OrthoSize < 90 {
			t.Fatalf("ortho size %v left the [90, 140] range", tr.OrthoSize)
		}
	}

	c.tick(dt)
	if !c.cameraInGameplay() {
		t.Fatalf("inGameplay should flip at t=D")
	}
	base := c.rig.base
	if base.Position.X != 12 || base.Position.Y != -8 || base.OrthoSize != 90 {
		t.Fatalf("rig should reach the gameplay viewpoint exactly, got %+v", base)
	}
	if c.cameraIsTransitioning() {
		t.Fatalf("transition should be finished")
	}
}

func TestRigEffectsOnlyInGameplay(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	c.cameraSetEffect(effect.Intoxicated)
	settle(c, 2)

	tr := c.cameraTransform()
	if tr.Position.X != -40 || tr.Position.Y != 25 || tr.Rotation != 0 || tr.OrthoSize != 140 {
		t.Fatalf("effects must not move the camera outside gameplay, got %+v", tr)
	}

	c.cameraGoToGameplay()
	settle(c, cfg.ViewTransition)
	if !c.cameraInGameplay() {
		t.Fatalf("expected gameplay mode")
	}

	// step once more so the effect output is not at a zero crossing
	c.tick(0.37)
	tr = c.cameraTransform()
	offset, rotation, scale := c.blend.Composite()
	if tr.Position.X != 12+offset.X || tr.Position.Y != -8+offset.Y {
		t.Fatalf("position should be base + offset, got %v (offset %v)", tr.Position, offset)
	}
	if tr.Rotation != rotation || tr.OrthoSize != 90*scale {
		t.Fatalf("unexpected rotation/size: %+v (rotation %v, scale %v)", tr, rotation, scale)
	}
	if offset.X == 0 && offset.Y == 0 && rotation == 0 {
		t.Fatalf("Intoxicated should produce a visible offset")
	}
}

func TestRigGameplayToIntro(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	c.cameraGoToGameplay()
	settle(c, cfg.ViewTransition)
	c.cameraSetEffect(effect.Drunk)
	settle(c, 2)

	c.cameraGoToIntro()
	c.tick(1)
	if !c.cameraInGameplay() {
		t.Fatalf("inGameplay should stay true until the intro transition completes")
	}
	if _, rotation, _ := c.blend.Composite(); c.cameraTransform().Rotation != rotation {
		t.Fatalf("effects should keep applying while leaving gameplay")
	}

	settle(c, cfg.ViewTransition)
	if c.cameraInGameplay() {
		t.Fatalf("inGameplay should be false after reaching intro")
	}
	tr := c.cameraTransform()
	if tr.Position.X != -40 || tr.Position.Y != 25 || tr.OrthoSize != 140 || tr.Rotation != 0 {
		t.Fatalf("expected exact intro transform, got %+v", tr)
	}
}

func TestRigLastTransitionWins(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	c.cameraGoToGameplay()
	for i := 0; i < 60; i++ {
		c.tick(testDelta)
	}
	c.cameraGoToIntro()
	settle(c, cfg.ViewTransition)

	if c.cameraInGameplay() {
		t.Fatalf("the later intro transition should win")
	}
	base := c.rig.base
	if base.Position.X != -40 || base.Position.Y != 25 || base.OrthoSize != 140 {
		t.Fatalf("expected intro viewpoint, got %+v", base)
	}
}

func TestRigTeleportCancelsTransition(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	c.cameraGoToGameplay()
	settle(c, cfg.ViewTransition)
	c.cameraGoToGameplay()
	c.cameraGoToIntro()
	c.tick(0.5)

	c.cameraTeleportToIntro()
	if c.cameraInGameplay() || c.cameraIsTransitioning() {
		t.Fatalf("teleport should leave gameplay and cancel transitions")
	}
	settle(c, cfg.ViewTransition)
	tr := c.cameraTransform()
	if tr.Position.X != -40 || tr.Position.Y != 25 || tr.OrthoSize != 140 {
		t.Fatalf("teleport should stick, got %+v", tr)
	}
}

func TestRigZeroDurationTransition(t *testing.T) {
	cfg := rigTestConfig()
	cfg.ViewTransition = 0
	c := newTestController(cfg)
	c.cameraGoToGameplay()
	c.tick(testDelta)
	if !c.cameraInGameplay() || c.rig.base.OrthoSize != 90 {
		t.Fatalf("zero duration transition should complete on the next tick")
	}
}

func TestCameraArea(t *testing.T) {
	cfg := rigTestConfig()
	c := newTestController(cfg)
	c.setResolution(320, 180)

	minX, minY, maxX, maxY := c.cameraAreaF64()
	halfW, halfH := 140*320.0/180.0, 140.0
	if math.Abs(minX-(-40-halfW)) > 1e-9 || math.Abs(maxY-(25+halfH)) > 1e-9 {
		t.Fatalf("unexpected unrotated area (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}

	c.transform.Rotation = 90
	c.updateCameraArea()
	minX, minY, maxX, maxY = c.cameraAreaF64()
	if math.Abs((maxX-minX)-2*halfH) > 1e-9 || math.Abs((maxY-minY)-2*halfW) > 1e-9 {
		t.Fatalf("a quarter turn should swap the area extents, got %v x %v", maxX-minX, maxY-minY)
	}
	area := c.cameraAreaGet()
	if float64(area.Min.X) > minX || float64(area.Max.Y) < maxY {
		t.Fatalf("integer area %v should contain the float area", area)
	}
}
