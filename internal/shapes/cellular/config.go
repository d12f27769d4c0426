package cellular

import (
	"strconv"

	ca "metablob/pkg/cellular"
)

// Config controls the cellular shape.
type Config struct {
	Seed   int64
	Params ca.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Params: ca.DefaultParams()}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Width = parsed
			c.Params.Height = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Height = parsed
		}
	}
	if v, ok := cfg["fill_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FillChance = parsed
		}
	}
	if v, ok := cfg["cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Cycles = parsed
		}
	}
	if v, ok := cfg["attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Attempts = parsed
		}
	}
	return c
}
