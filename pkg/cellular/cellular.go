// Package cellular grows blobs with a cellular automaton: a random fill is
// smoothed by a few passes of a Moore-neighborhood rule.
package cellular

import (
	"errors"
	"fmt"

	"metablob/pkg/core"
)

var (
	// ErrInvalidParams is returned for unusable dimensions or probabilities.
	ErrInvalidParams = errors.New("cellular: invalid params")
	// ErrEmptyBlob is returned when every attempt died out.
	ErrEmptyBlob = errors.New("cellular: blob empty after all attempts")
)

const (
	// dieAtOrBelow empties a cell with this many solid neighbors or fewer.
	dieAtOrBelow = 3
	// bornAbove fills a cell with more solid neighbors than this.
	bornAbove = 5
)

// Params controls the automaton.
type Params struct {
	Width, Height int
	// FillChance is the probability a cell starts solid.
	FillChance float64
	Cycles     int
	// Attempts bounds how often an empty result is regenerated.
	Attempts int
}

// DefaultParams matches the granite blobs of the world generator: a 10x10
// box, about half filled, smoothed three times.
func DefaultParams() Params {
	return Params{Width: 10, Height: 10, FillChance: 6.0 / 11.0, Cycles: 3, Attempts: 8}
}

// Validate reports whether p can be generated.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.FillChance < 0 || p.FillChance > 1:
		return fmt.Errorf("%w: fill chance %v outside [0, 1]", ErrInvalidParams, p.FillChance)
	case p.Cycles < 0:
		return fmt.Errorf("%w: negative cycles %d", ErrInvalidParams, p.Cycles)
	case p.Attempts <= 0:
		return fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidParams, p.Attempts)
	}
	return nil
}

// Blob is the automaton state.
type Blob struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// New returns an empty blob with the provided dimensions.
func New(w, h int) *Blob {
	cells := make([]uint8, w*h)
	return &Blob{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// Cells exposes the current grid values, 1 for solid.
func (b *Blob) Cells() []uint8 { return b.cur }

// Fill seeds every cell solid with probability chance.
func (b *Blob) Fill(rng *core.RNG, chance float64) {
	for i := range b.cur {
		b.cur[i] = 0
		if rng.Chance(chance) {
			b.cur[i] = 1
		}
	}
}

// Step applies one smoothing pass. Cells outside the grid count as empty.
func (b *Blob) Step() {
	w, h := b.w, b.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w || (dx == 0 && dy == 0) {
						continue
					}
					neighbors += int(b.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			next := b.cur[idx]
			switch {
			case neighbors <= dieAtOrBelow:
				next = 0
			case neighbors > bornAbove:
				next = 1
			}
			b.nxt[idx] = next
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// Coords returns the solid cells in row-major order.
func (b *Blob) Coords() []core.Coord {
	var out []core.Coord
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cur[y*b.w+x] != 0 {
				out = append(out, core.Coord{X: int32(x), Y: int32(y)})
			}
		}
	}
	return out
}

// Generate grows a blob for seed. Empty results are regenerated from the same
// stream up to p.Attempts times.
func Generate(seed int64, p Params) ([]core.Coord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rng := core.NewRNG(seed)
	b := New(p.Width, p.Height)
	for attempt := 0; attempt < p.Attempts; attempt++ {
		b.Fill(rng, p.FillChance)
		for c := 0; c < p.Cycles; c++ {
			b.Step()
		}
		if coords := b.Coords(); len(coords) > 0 {
			return coords, nil
		}
	}
	return nil, fmt.Errorf("%w: seed %d, %d attempts", ErrEmptyBlob, seed, p.Attempts)
}
