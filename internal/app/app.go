//go:build ebiten

package app

import (
	"image/color"
	"time"

	"metablob/internal/core"
	"metablob/internal/render"
	"metablob/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a shape to the ebiten.Game interface.
type Game struct {
	shape   core.Shape
	painter *render.GridPainter
	overlay *ui.Overlay
	slides  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale     int
	slideshow bool
	seed      int64
}

// New constructs a Game for the provided shape. rate is the number of seeds
// shown per second while the slideshow runs.
func New(shape core.Shape, scale int, seed int64, rate float64) *Game {
	gp := render.NewGridPainter(shape.Size().W, shape.Size().H)
	g := &Game{
		shape:    shape,
		painter:  gp,
		overlay:  ui.NewOverlay(shape, scale),
		slides:   core.NewFixedStep(rate),
		onColor:  color.RGBA{R: 0x7f, G: 0xb0, B: 0x69, A: 0xff},
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	g.Reset(seed)
	return g
}

// Reset regenerates the shape with the provided seed. Generation errors are
// shown on the overlay instead of stopping the viewer.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.shape.Reset(seed); err != nil {
		g.overlay.SetStatus(err.Error())
		return
	}
	g.overlay.SetStatus("")
}

// Update handles per-frame input and advances the slideshow.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.slideshow = !g.slideshow
		g.slides.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(g.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Reset(g.seed - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if g.slideshow && g.slides.ShouldStep() {
		g.Reset(g.seed + 1)
	}
	return nil
}

// Draw renders the current shape.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.shape.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.shape.Size()
	return s.W * g.scale, s.H * g.scale
}
