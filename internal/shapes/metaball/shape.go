// Package metaball adapts the metaball generator to the shape registry.
package metaball

import (
	"metablob/internal/core"
	mb "metablob/pkg/metaball"
)

// Blob renders metaball fields into a byte grid.
type Blob struct {
	cfg   Config
	grid  *core.ByteGrid
	balls []mb.Ball
	seed  int64
}

// New returns a Blob using the provided configuration.
func New(cfg Config) *Blob {
	size := int(cfg.Params.Size)
	return &Blob{cfg: cfg, grid: core.NewByteGrid(size, size), seed: cfg.Seed}
}

// Name returns the shape identifier.
func (b *Blob) Name() string { return "metaball" }

// Size reports the grid dimensions.
func (b *Blob) Size() core.Size { return core.Size{W: b.grid.W, H: b.grid.H} }

// Cells exposes the grid, 1 for occupied cells.
func (b *Blob) Cells() []uint8 { return b.grid.Cells() }

// Balls exposes the balls sampled by the last successful Reset.
func (b *Blob) Balls() []mb.Ball { return b.balls }

// Seed returns the seed of the last Reset.
func (b *Blob) Seed() int64 { return b.seed }

// Reset regenerates the blob for seed. On error the grid is left empty.
func (b *Blob) Reset(seed int64) error {
	b.seed = seed
	b.grid.Clear()
	b.balls = nil

	balls, err := b.cfg.Params.Sample(seed)
	if err != nil {
		return err
	}
	b.balls = balls
	b.grid.Mark(mb.Evaluate(balls, b.cfg.Params.Size), 1)
	return nil
}

// Parameters describes the effective configuration.
func (b *Blob) Parameters() core.ParameterSnapshot {
	p := b.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("size", "Size", int64(p.Size)),
				core.IntParam("seed", "Seed", b.seed),
			},
		},
		{
			Name: "Balls",
			Params: []core.Parameter{
				core.IntParam("balls_min", "Ball count min", int64(p.Balls.Lo)),
				core.IntParam("balls_max", "Ball count max", int64(p.Balls.Hi)),
				core.IntParam("pos_min", "Center min", int64(p.Position.Lo)),
				core.IntParam("pos_max", "Center max", int64(p.Position.Hi)),
				core.IntParam("radius_min", "Radius min", int64(p.Radius.Lo)),
				core.IntParam("radius_max", "Radius max", int64(p.Radius.Hi)),
			},
		},
	}}
}

func init() {
	core.Register("metaball", func(cfg map[string]string) core.Shape {
		return New(FromMap(cfg))
	})
}
