// Command blob-survey reports how occupied a shape configuration is across a
// range of seeds.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"

	"metablob/internal/app"
	"metablob/internal/core"
	_ "metablob/internal/shapes/cellular"
	_ "metablob/internal/shapes/metaball"
	"metablob/internal/survey"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "blob-survey: ", 0)

	fs := flag.NewFlagSet("blob-survey", flag.ContinueOnError)
	fs.SetOutput(stderr)
	shape := fs.String("shape", "metaball", "shape generator to survey")
	start := fs.Int64("start", 0, "first seed")
	count := fs.Int("count", 1000, "number of consecutive seeds")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel generations")
	var overrides app.KVList
	fs.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	factory, ok := core.Shapes()[*shape]
	if !ok {
		logger.Printf("unknown shape %q (available: %v)", *shape, core.ShapeNames())
		return 2
	}

	cfg := overrides.Map()
	if pp, ok := factory(cfg).(core.ParameterProvider); ok {
		if _, err := pp.Parameters().WriteTo(stdout); err != nil {
			logger.Print(err)
			return 1
		}
	}

	stats, err := survey.Run(ctx, factory, cfg, survey.Options{Start: *start, Count: *count, Workers: *workers})
	fmt.Fprintf(stdout, "\nSeeds %d..%d: %d generated, %d failed, %d empty\n",
		*start, *start+int64(*count)-1, stats.Seeds, stats.Failures, stats.Empty)
	if stats.Seeds > 0 {
		fmt.Fprintf(stdout, "Cells: min %d (seed %d), max %d (seed %d), mean %.2f, coverage %.1f%%\n",
			stats.MinCells, stats.MinSeed, stats.MaxCells, stats.MaxSeed, stats.MeanCells, stats.Coverage*100)
	}
	if err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}
