package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/edwinsyarief/altercam"
	"github.com/edwinsyarief/altercam/effect"
	"github.com/edwinsyarief/altercam/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	canvasWidth  = 320
	canvasHeight = 180
	tileSize     = 16
)

var effectKeys = map[ebiten.Key]effect.Kind{
	altercam.KeyEffectNone:        effect.None,
	altercam.KeyEffectDrunk:       effect.Drunk,
	altercam.KeyEffectIntoxicated: effect.Intoxicated,
	altercam.KeyEffectMushrooms:   effect.Mushrooms,
}

type game struct {
	heart *ebiten.Image
	hud   *altercam.Offscreen
}

func newGame() *game {
	heart := utils.MaskToImage(7, []uint8{
		0, 1, 1, 0, 1, 1, 0,
		1, 2, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1,
		0, 1, 1, 1, 1, 1, 0,
		0, 0, 1, 1, 1, 0, 0,
		0, 0, 0, 1, 0, 0, 0,
	}, utils.RGB(224, 60, 80), utils.RGB(255, 200, 200))
	return &game{heart: heart, hud: altercam.NewOffscreen(canvasWidth, canvasHeight)}
}

func (g *game) Update() error {
	for key, kind := range effectKeys {
		if inpututil.IsKeyJustPressed(key) {
			altercam.Camera().SetEffect(kind)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		altercam.Camera().GoToGameplay()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		altercam.Camera().GoToIntro()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		altercam.Camera().TeleportToIntro()
	}
	return nil
}

// Draws a checkerboard floor with a ring of hearts around the origin.
func (g *game) Draw(canvas *ebiten.Image) {
	area := altercam.Camera().Area()
	light, dark := utils.RGB(58, 64, 92), utils.RGB(44, 48, 70)

	startX := floorDiv(area.Min.X, tileSize) * tileSize
	startY := floorDiv(area.Min.Y, tileSize) * tileSize
	for y := startY; y < area.Max.Y; y += tileSize {
		for x := startX; x < area.Max.X; x += tileSize {
			clr := dark
			if (x/tileSize+y/tileSize)%2 == 0 {
				clr = light
			}
			cx, cy := utils.ToCanvasCoords(float64(x), float64(y))
			utils.FillOverRect(canvas, image.Rect(int(cx), int(cy), int(cx)+tileSize, int(cy)+tileSize), clr)
		}
	}

	for i := -4; i <= 4; i++ {
		for j := -2; j <= 2; j++ {
			opts := utils.DrawImageOptionsAt(g.heart, float64(i*32-3), float64(j*32-3))
			canvas.DrawImage(g.heart, &opts)
		}
	}
}

func (g *game) DrawOverlay(viewport *ebiten.Image) {
	g.hud.Clear()
	cam := altercam.Camera()
	if !cam.InGameplay() {
		g.hud.Coat(color.RGBA{0, 0, 0, 48})
	}
	width, height := g.hud.Size()
	utils.FillOverRect(g.hud.Target(), image.Rect(0, 0, width, 120), color.RGBA{0, 0, 0, 96})
	if cam.GetEffect() != effect.None {
		var opts ebiten.DrawImageOptions
		opts.GeoM.Translate(float64(width-g.heart.Bounds().Dx()-4), float64(height-g.heart.Bounds().Dy()-4))
		g.hud.Draw(g.heart, &opts)
	}

	tr := cam.Transform()
	lines := fmt.Sprintf(
		"effect: %s  gameplay: %t\npos: (%.1f, %.1f) rot: %.2f size: %.1f hue: %.1f\n",
		cam.GetEffect(), cam.InGameplay(), tr.Position.X, tr.Position.Y, tr.Rotation, tr.OrthoSize, tr.HueShift,
	)
	for _, kind := range effect.Kinds() {
		lines += fmt.Sprintf("%-11s %.2f\n", kind, cam.EffectWeight(kind))
	}
	lines += "Q/W/E/R effects, Enter/Backspace views, T teleport"
	ebitenutil.DebugPrintAt(g.hud.Target(), lines, 4, 4)
	g.hud.Project(viewport)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func main() {
	configPath := flag.String("config", "", "camera configuration file (YAML)")
	initialEffect := flag.String("effect", "none", "initial camera effect (none, drunk, intoxicated, mushrooms)")
	gameplay := flag.Bool("gameplay", false, "start transitioning to the gameplay viewpoint")
	flag.Parse()

	if *configPath != "" {
		cfg, err := altercam.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		altercam.SetConfig(cfg)
	}

	kind, err := effect.ParseKind(*initialEffect)
	if err != nil {
		log.Fatal(err)
	}
	altercam.Camera().SetEffect(kind)
	if *gameplay {
		altercam.Camera().GoToGameplay()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(canvasWidth*4, canvasHeight*4)
	ebiten.SetWindowTitle("altercam")
	altercam.SetResolution(canvasWidth, canvasHeight)
	if err := altercam.Run(newGame()); err != nil {
		log.Fatal(err)
	}
}
