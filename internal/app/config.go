package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters shared by the viewer and
// the CLI tools.
type Config struct {
	Shape string
	Scale int
	Rate  float64
	Seed  int64
	Set   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Shape: "metaball", Scale: 24, Rate: 2, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Shape, "shape", c.Shape, "shape generator to use")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "slideshow seeds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first shape")
	fs.Var(&c.Set, "set", "shape parameter override in key=value form (repeatable)")
}

// StartSeed returns the seed of the first shape: a parseable seed override
// wins over the seed flag.
func (c *Config) StartSeed() int64 {
	if v, ok := c.Set.Map()["seed"]; ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return seed
		}
	}
	return c.Seed
}

// ShapeConfig returns the overrides as the key/value map factories accept,
// with seed set to StartSeed.
func (c *Config) ShapeConfig() map[string]string {
	m := c.Set.Map()
	m["seed"] = strconv.FormatInt(c.StartSeed(), 10)
	return m
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set validates and appends one key=value pair.
func (l *KVList) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs override earlier ones.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
