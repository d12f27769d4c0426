// Package metaball generates deterministic blob shapes from a seeded set of
// circular influence sources.
//
// A call samples a ball count, then an (x, y, radius) triple per ball, from a
// ChaCha8 stream keyed by the seed, and thresholds an inverse-square field
// over a size x size grid. The generator, the seed mapping and the order of
// draws are fixed, so a seed reproduces the same shape everywhere.
package metaball

import "metablob/pkg/core"

const (
	// Saturation is the contribution of a ball to the cell at its exact center.
	Saturation = 20.0
	// Falloff divides the inverse-square contribution r²/d².
	Falloff = 1.6
	// Threshold is the field value a cell must exceed to be occupied.
	Threshold = 1.2
)

// Coord is an occupied grid cell.
type Coord = core.Coord

// Ball is a single influence source.
type Ball struct {
	X, Y   int32
	Radius float64
}

// Center returns the ball center as a grid coordinate.
func (b Ball) Center() Coord { return Coord{X: b.X, Y: b.Y} }

// Contribution returns the field value the ball adds at squared distance d2,
// as produced by Coord.DistSq. It is never negative.
func (b Ball) Contribution(d2 float64) float64 {
	if d2 == 0 {
		return Saturation
	}
	c := b.Radius * b.Radius
	return c / d2 / Falloff
}

// Range is an inclusive integer interval.
type Range struct {
	Lo, Hi int32
}

// R is shorthand for Range{Lo: lo, Hi: hi}.
func R(lo, hi int32) Range { return Range{Lo: lo, Hi: hi} }

// Contains reports whether v lies in r.
func (r Range) Contains(v int32) bool { return v >= r.Lo && v <= r.Hi }

// Params bundles the shape parameters of a blob.
type Params struct {
	Size     int32
	Balls    Range
	Position Range
	Radius   Range
}

// DefaultParams returns a 16x16 blob of three or four balls kept away from
// the edges.
func DefaultParams() Params {
	return Params{
		Size:     16,
		Balls:    R(3, 4),
		Position: R(4, 11),
		Radius:   R(2, 4),
	}
}

// Validate checks the preconditions of Generate without sampling anything.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return &SizeError{Size: p.Size}
	}
	if err := checkRange("balls", p.Balls, true); err != nil {
		return err
	}
	if err := checkRange("position", p.Position, false); err != nil {
		return err
	}
	return checkRange("radius", p.Radius, true)
}

func checkRange(field string, r Range, nonNegative bool) error {
	if r.Hi < r.Lo || (nonNegative && r.Lo < 0) {
		return &RangeError{Field: field, Range: r}
	}
	return nil
}

// Generate returns the occupied cells for seed in row-major order.
func (p Params) Generate(seed int64) ([]Coord, error) {
	balls, err := p.Sample(seed)
	if err != nil {
		return nil, err
	}
	return Evaluate(balls, p.Size), nil
}

// Sample validates p and draws the balls for seed: the count first, then x,
// y and radius for each ball in turn.
func (p Params) Sample(seed int64) ([]Ball, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rng := core.NewRNG(seed)
	n := rng.Between(p.Balls.Lo, p.Balls.Hi)
	balls := make([]Ball, 0, n)
	for i := int32(0); i < n; i++ {
		x := rng.Between(p.Position.Lo, p.Position.Hi)
		y := rng.Between(p.Position.Lo, p.Position.Hi)
		r := rng.Between(p.Radius.Lo, p.Radius.Hi)
		balls = append(balls, Ball{X: x, Y: y, Radius: float64(r)})
	}
	return balls, nil
}

// Generate is the positional form of Params.Generate.
func Generate(seed int64, size int32, numBalls, position, radius Range) ([]Coord, error) {
	p := Params{Size: size, Balls: numBalls, Position: position, Radius: radius}
	return p.Generate(seed)
}

// Evaluate scans the size x size grid row by row and returns every cell whose
// field exceeds Threshold.
func Evaluate(balls []Ball, size int32) []Coord {
	var out []Coord
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			if Occupied(balls, x, y) {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Occupied reports whether the field at (x, y) exceeds Threshold. Summation
// stops as soon as the threshold is crossed.
func Occupied(balls []Ball, x, y int32) bool {
	cell := Coord{X: x, Y: y}
	val := 0.0
	for _, b := range balls {
		val += b.Contribution(cell.DistSq(b.Center()))
		if val > Threshold {
			return true
		}
	}
	return false
}

// FieldAt returns the full field value at (x, y).
func FieldAt(balls []Ball, x, y int32) float64 {
	cell := Coord{X: x, Y: y}
	val := 0.0
	for _, b := range balls {
		val += b.Contribution(cell.DistSq(b.Center()))
	}
	return val
}
