package core

// Coord is an integer grid position.
type Coord struct {
	X, Y int32
}

// Add returns the component-wise sum of c and o. Components wrap on int32
// overflow.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// DistSq returns the squared Euclidean distance between c and o. Each squared
// delta is exact in uint64; the sum is formed in float64 because two of them
// can exceed 2^64. Distances below 2^53 are exact.
func (c Coord) DistSq(o Coord) float64 {
	return float64(sqDelta(c.X, o.X)) + float64(sqDelta(c.Y, o.Y))
}

func sqDelta(a, b int32) uint64 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return uint64(d) * uint64(d)
}
