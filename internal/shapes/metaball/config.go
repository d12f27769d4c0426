package metaball

import (
	"strconv"

	mb "metablob/pkg/metaball"
)

// Config controls the metaball shape.
type Config struct {
	Seed   int64
	Params mb.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: 0, Params: mb.DefaultParams()}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable values keep their defaults; range checks are left to
// the generator so inverted ranges still fail.
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
	setInt32(cfg, "size", &c.Params.Size)
	setInt32(cfg, "balls_min", &c.Params.Balls.Lo)
	setInt32(cfg, "balls_max", &c.Params.Balls.Hi)
	setInt32(cfg, "pos_min", &c.Params.Position.Lo)
	setInt32(cfg, "pos_max", &c.Params.Position.Hi)
	setInt32(cfg, "radius_min", &c.Params.Radius.Lo)
	setInt32(cfg, "radius_max", &c.Params.Radius.Hi)
	return c
}

func setInt32(cfg map[string]string, key string, dst *int32) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
		*dst = int32(parsed)
	}
}
