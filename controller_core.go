package altercam

import (
	"image"
	"math"

	"github.com/edwinsyarief/altercam/grading"
	"github.com/edwinsyarief/altercam/utils"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

var pkgController controller

func init() {
	pkgController.setConfig(DefaultConfig())
}

type controller struct {
	// core state
	game             Game
	config           Config
	reusableCanvas   *ebiten.Image // keeps the biggest size requested so far
	logicalWidth     int
	logicalHeight    int
	hiResWidth       int
	hiResHeight      int
	layoutHasChanged bool
	inDraw           bool

	// camera
	blend      blendState
	rig        rig
	transform  Transform
	grading    grading.Volume
	cameraArea image.Rectangle

	// ticks
	currentTick uint64
}

// --- ebiten.Game implementation ---

func (self *controller) Update() error {
	self.currentTick += 1
	err := self.game.Update()
	if err != nil {
		return err
	}
	self.tick(tickDelta(ebiten.TPS(), ebiten.ActualTPS()))
	self.layoutHasChanged = false
	return nil
}

func (self *controller) Draw(hiResCanvas *ebiten.Image) {
	self.inDraw = true
	logicalCanvas := self.getLogicalCanvas()
	self.game.Draw(logicalCanvas)

	activeCanvas := self.getActiveHiResCanvas(hiResCanvas)
	self.projectCamera(logicalCanvas, activeCanvas)
	if overlay, ok := self.game.(OverlayDrawer); ok {
		overlay.DrawOverlay(activeCanvas)
	}
	self.inDraw = false
}

func (self *controller) Layout(logicWinWidth, logicWinHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	hiResWidth := int(float64(logicWinWidth) * scale)
	hiResHeight := int(float64(logicWinHeight) * scale)
	if hiResWidth != self.hiResWidth || hiResHeight != self.hiResHeight {
		self.layoutHasChanged = true
		self.hiResWidth, self.hiResHeight = hiResWidth, hiResHeight
	}
	return self.hiResWidth, self.hiResHeight
}

// --- canvases ---

func (self *controller) getLogicalCanvas() *ebiten.Image {
	width, height := max(self.cameraArea.Dx(), 1), max(self.cameraArea.Dy(), 1)
	if self.reusableCanvas != nil {
		bounds := self.reusableCanvas.Bounds()
		if width <= bounds.Dx() && height <= bounds.Dy() {
			canvas := utils.SubImage(self.reusableCanvas, 0, 0, width, height)
			canvas.Clear()
			return canvas
		}
	}

	// zoom-outs grow the area progressively, so we reserve some extra
	// space to avoid reallocating on every tick of a transition
	self.reusableCanvas = ebiten.NewImage(width+width/4, height+height/4)
	return utils.SubImage(self.reusableCanvas, 0, 0, width, height)
}

func (self *controller) getActiveHiResCanvas(hiResCanvas *ebiten.Image) *ebiten.Image {
	// crop margins based on aspect ratios
	hiBounds := hiResCanvas.Bounds()
	hiWidth, hiHeight := hiBounds.Dx(), hiBounds.Dy()
	hiAspectRatio := float64(hiWidth) / float64(hiHeight)
	loAspectRatio := float64(self.logicalWidth) / float64(self.logicalHeight)

	switch {
	case hiAspectRatio == loAspectRatio: // just scaling
		return hiResCanvas
	case hiAspectRatio > loAspectRatio: // horz margins
		xMargin := int((float64(hiWidth) - loAspectRatio*float64(hiHeight)) / 2.0)
		return utils.SubImage(hiResCanvas, xMargin, 0, hiWidth-xMargin, hiHeight)
	default: // vert margins
		yMargin := int((float64(hiHeight) - float64(hiWidth)/loAspectRatio) / 2.0)
		return utils.SubImage(hiResCanvas, 0, yMargin, hiWidth, hiHeight-yMargin)
	}
}

// Draws the logical canvas into the target as seen through the
// camera transform, with color grading applied.
func (self *controller) projectCamera(logicalCanvas, target *ebiten.Image) {
	geom := cameraGeoM(self.cameraArea.Min, self.transform, target.Bounds())
	self.grading.Draw(target, logicalCanvas, geom, ebiten.FilterLinear)
}

// Maps logical canvas pixels to target pixels. The canvas origin is
// the world point canvasOrigin; the transform position ends at the
// target center and the orthographic size spans half its height.
func cameraGeoM(canvasOrigin image.Point, transform Transform, targetBounds image.Rectangle) ebiten.GeoM {
	targetWidth, targetHeight := float64(targetBounds.Dx()), float64(targetBounds.Dy())

	var geom ebiten.GeoM
	geom.Translate(
		float64(canvasOrigin.X)-transform.Position.X,
		float64(canvasOrigin.Y)-transform.Position.Y,
	)
	geom.Rotate(-transform.Rotation * math.Pi / 180.0)
	scale := targetHeight / (2.0 * transform.OrthoSize)
	geom.Scale(scale, scale)
	geom.Translate(
		float64(targetBounds.Min.X)+targetWidth/2.0,
		float64(targetBounds.Min.Y)+targetHeight/2.0,
	)
	return geom
}

// Draws a camera-independent source stretched over the target,
// which is expected to be the already cropped active area.
func (self *controller) project(source, target *ebiten.Image) {
	targetBounds, sourceBounds := target.Bounds(), source.Bounds()
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(
		float64(targetBounds.Dx())/float64(sourceBounds.Dx()),
		float64(targetBounds.Dy())/float64(sourceBounds.Dy()),
	)
	opts.GeoM.Translate(float64(targetBounds.Min.X), float64(targetBounds.Min.Y))
	target.DrawImage(source, &opts)
}

// --- run and configuration ---

func (self *controller) run(game Game) error {
	if self.logicalWidth == 0 || self.logicalHeight == 0 {
		panic(errNotReady)
	}
	self.game = game
	return ebiten.RunGame(self)
}

func (self *controller) setConfig(cfg Config) {
	if self.inDraw {
		panic("can't change configuration" + errDrawMutation)
	}
	self.config = cfg
	self.blend = newBlendState(&self.config)
	self.rig = newRig(&self.config)
	self.updateTransform()
}

func (self *controller) getConfig() Config {
	return self.config
}

// --- resolution ---

func (self *controller) getResolution() (width, height int) {
	return self.logicalWidth, self.logicalHeight
}

func (self *controller) setResolution(width, height int) {
	if self.inDraw {
		panic("can't change resolution" + errDrawMutation)
	}
	if width < 1 || height < 1 {
		panic("game resolution must be at least (1, 1)")
	}
	if width != self.logicalWidth || height != self.logicalHeight {
		self.logicalWidth, self.logicalHeight = width, height
		self.updateCameraArea()
	}
}

// --- ticks ---

// Returns the seconds a single tick advances the camera by. Uncapped
// tick rates (see [ebiten.SyncWithFPS]) report a negative TPS, so the
// measured rate is used instead, or defaultTPS while it's unknown.
func tickDelta(tps int, actualTPS float64) float64 {
	if tps > 0 {
		return 1.0 / float64(tps)
	}
	if actualTPS > 0 {
		return 1.0 / actualTPS
	}
	return 1.0 / defaultTPS
}

func (self *controller) tickNow() uint64 {
	return self.currentTick
}
