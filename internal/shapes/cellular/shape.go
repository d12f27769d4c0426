// Package cellular adapts the cellular automaton blob generator to the shape
// registry.
package cellular

import (
	"metablob/internal/core"
	ca "metablob/pkg/cellular"
)

// Cave renders cellular automaton blobs into a byte grid.
type Cave struct {
	cfg  Config
	grid *core.ByteGrid
	seed int64
}

// New returns a Cave using the provided configuration.
func New(cfg Config) *Cave {
	return &Cave{cfg: cfg, grid: core.NewByteGrid(cfg.Params.Width, cfg.Params.Height), seed: cfg.Seed}
}

// Name returns the shape identifier.
func (c *Cave) Name() string { return "cellular" }

// Size reports the grid dimensions.
func (c *Cave) Size() core.Size { return core.Size{W: c.grid.W, H: c.grid.H} }

// Cells exposes the grid, 1 for solid cells.
func (c *Cave) Cells() []uint8 { return c.grid.Cells() }

// Seed returns the seed of the last Reset.
func (c *Cave) Seed() int64 { return c.seed }

// Reset regenerates the blob for seed. On error the grid is left empty.
func (c *Cave) Reset(seed int64) error {
	c.seed = seed
	c.grid.Clear()
	coords, err := ca.Generate(seed, c.cfg.Params)
	if err != nil {
		return err
	}
	c.grid.Mark(coords, 1)
	return nil
}

// Parameters describes the effective configuration.
func (c *Cave) Parameters() core.ParameterSnapshot {
	p := c.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(p.Width)),
				core.IntParam("h", "Height", int64(p.Height)),
				core.IntParam("seed", "Seed", c.seed),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				core.FloatParam("fill_chance", "Fill chance", p.FillChance),
				core.IntParam("cycles", "Cycles", int64(p.Cycles)),
				core.IntParam("attempts", "Attempts", int64(p.Attempts)),
			},
		},
	}}
}

func init() {
	core.Register("cellular", func(cfg map[string]string) core.Shape {
		return New(FromMap(cfg))
	})
}
