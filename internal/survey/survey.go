// Package survey measures how a shape configuration behaves across many
// seeds, mainly to tune parameter ranges.
package survey

import (
	"context"
	"fmt"
	"math"
	"sync"

	"metablob/internal/core"
)

// Options selects the seeds to evaluate.
type Options struct {
	Start   int64
	Count   int
	Workers int
}

// Stats aggregates the occupied cell counts of the evaluated seeds.
type Stats struct {
	Seeds     int
	Failures  int
	Empty     int
	MinCells  int
	MaxCells  int
	MeanCells float64
	// Coverage is MeanCells over the grid area.
	Coverage float64
	// MinSeed and MaxSeed produced MinCells and MaxCells.
	MinSeed int64
	MaxSeed int64
}

type sample struct {
	seed  int64
	cells int
	err   error
	done  bool
}

// Run evaluates Count seeds from Start on fresh shapes built by factory with
// cfg. At most Workers shapes are generated at once. The first generation
// error is returned together with the stats of the successful seeds.
func Run(ctx context.Context, factory core.Factory, cfg map[string]string, opts Options) (Stats, error) {
	if factory == nil {
		return Stats{}, fmt.Errorf("survey: nil factory")
	}
	if opts.Count <= 0 {
		return Stats{}, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	samples := make([]sample, opts.Count)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

schedule:
	for i := 0; i < opts.Count; i++ {
		select {
		case <-ctx.Done():
			break schedule
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			seed := opts.Start + int64(i)
			shape := factory(cfg)
			err := shape.Reset(seed)
			cells := 0
			if err == nil {
				for _, v := range shape.Cells() {
					if v != 0 {
						cells++
					}
				}
			}
			samples[i] = sample{seed: seed, cells: cells, err: err, done: true}
		}(i)
	}
	wg.Wait()

	size := factory(cfg).Size()
	stats, err := aggregate(samples, size.W*size.H)
	if err == nil {
		err = ctx.Err()
	}
	return stats, err
}

func aggregate(samples []sample, area int) (Stats, error) {
	stats := Stats{MinCells: math.MaxInt}
	var firstErr error
	total := 0
	for _, s := range samples {
		if !s.done {
			continue
		}
		if s.err != nil {
			stats.Failures++
			if firstErr == nil {
				firstErr = fmt.Errorf("survey: seed %d: %w", s.seed, s.err)
			}
			continue
		}
		stats.Seeds++
		total += s.cells
		if s.cells == 0 {
			stats.Empty++
		}
		if s.cells < stats.MinCells {
			stats.MinCells = s.cells
			stats.MinSeed = s.seed
		}
		if s.cells > stats.MaxCells || stats.Seeds == 1 {
			stats.MaxCells = s.cells
			stats.MaxSeed = s.seed
		}
	}
	if stats.Seeds == 0 {
		stats.MinCells = 0
		return stats, firstErr
	}
	stats.MeanCells = float64(total) / float64(stats.Seeds)
	if area > 0 {
		stats.Coverage = stats.MeanCells / float64(area)
	}
	return stats, firstErr
}
