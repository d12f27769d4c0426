//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"metablob/internal/core"
	mb "metablob/pkg/metaball"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type ballProvider interface {
	Balls() []mb.Ball
}

type seedProvider interface {
	Seed() int64
}

var (
	ballColor   = color.RGBA{R: 0xe0, G: 0x6c, B: 0x4f, A: 0xff}
	centerColor = color.RGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
	statusColor = color.RGBA{R: 0x9a, G: 0xd1, B: 0xd4, A: 0xff}
)

// Overlay draws the sampled balls and a status line on top of the shape.
type Overlay struct {
	shape     core.Shape
	scale     int
	showBalls bool
	status    string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(shape core.Shape, scale int) *Overlay {
	return &Overlay{shape: shape, scale: scale, showBalls: true}
}

// SetStatus replaces the message drawn under the seed line.
func (o *Overlay) SetStatus(msg string) { o.status = msg }

// Update toggles the ball layer with the O key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showBalls = !o.showBalls
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showBalls {
		o.drawBalls(screen)
	}
	line := o.shape.Name()
	if sp, ok := o.shape.(seedProvider); ok {
		line = fmt.Sprintf("%s  seed %d", line, sp.Seed())
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, statusColor)
	if o.status != "" {
		text.Draw(screen, o.status, basicfont.Face7x13, 4, 30, statusColor)
	}
}

func (o *Overlay) drawBalls(screen *ebiten.Image) {
	bp, ok := o.shape.(ballProvider)
	if !ok {
		return
	}
	s := float32(o.scale)
	half := s / 2
	for _, b := range bp.Balls() {
		cx := float32(b.X)*s + half
		cy := float32(b.Y)*s + half
		vector.StrokeCircle(screen, cx, cy, float32(b.Radius)*s, 1, ballColor, true)
		vector.DrawFilledRect(screen, cx-half, cy-half, s, s, centerColor, false)
	}
}
