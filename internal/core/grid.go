package core

import pcore "metablob/pkg/core"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// Mark sets every in-bounds coordinate to v and returns how many were set.
func (g *ByteGrid) Mark(coords []pcore.Coord, v uint8) int {
	n := 0
	for _, c := range coords {
		x, y := int(c.X), int(c.Y)
		if !g.In(x, y) {
			continue
		}
		g.data[g.Index(x, y)] = v
		n++
	}
	return n
}

// Coords returns the non-zero cells in row-major order.
func (g *ByteGrid) Coords() []pcore.Coord {
	var out []pcore.Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.data[g.Index(x, y)] != 0 {
				out = append(out, pcore.Coord{X: int32(x), Y: int32(y)})
			}
		}
	}
	return out
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
