package metaball

import (
	"fmt"

	"metablob/pkg/core"
)

// Feature is a named blob placed into a larger world, such as a patch of
// stone inside a chunk.
type Feature struct {
	Name   string
	Params Params
}

// Placement is one world cell claimed by a feature.
type Placement struct {
	Pos   Coord
	Block string
}

// FeatureSeed derives the seed of the feature called name anchored at origin
// in the world seeded with world. Arithmetic wraps.
func FeatureSeed(world int64, origin Coord, name string) int64 {
	return world + int64(core.Pair(int64(origin.X), int64(origin.Y))) + core.NameSum(name)
}

// Place generates the feature for origin and offsets every cell by it. Like
// FeatureSeed, the offset wraps: cells pushed past math.MaxInt32 continue
// from math.MinInt32.
func (f Feature) Place(world int64, origin Coord) ([]Placement, error) {
	coords, err := f.Params.Generate(FeatureSeed(world, origin, f.Name))
	if err != nil {
		return nil, fmt.Errorf("place %s at %d,%d: %w", f.Name, origin.X, origin.Y, err)
	}
	out := make([]Placement, len(coords))
	for i, c := range coords {
		out[i] = Placement{Pos: origin.Add(c), Block: f.Name}
	}
	return out, nil
}

// Batch generates n blobs for the consecutive seeds seed, seed+1, ...
func Batch(seed int64, n int, p Params) ([][]Coord, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: batch of %d", ErrInvalidCount, n)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([][]Coord, 0, n)
	for i := 0; i < n; i++ {
		coords, err := p.Generate(seed + int64(i))
		if err != nil {
			return nil, err
		}
		out = append(out, coords)
	}
	return out, nil
}
