package core

import (
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
)

// RNG wraps a ChaCha8 stream so that every seed produces the same sequence on
// every platform and Go release.
type RNG struct {
	src *rand.ChaCha8
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided signed seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewChaCha8(Key(NormalizeSeed(seed)))
	return &RNG{src: src, r: rand.New(src)}
}

// Key expands a normalized seed into a ChaCha8 key: the seed occupies the
// first eight bytes little-endian, the rest is zero.
func Key(seed uint64) [32]byte {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return key
}

// Uint64 returns the next raw 64-bit value of the stream.
func (r *RNG) Uint64() uint64 { return r.src.Uint64() }

// Between returns a uniform value in [lo, hi], consuming one Uint64 per
// attempt. It panics if hi < lo.
func (r *RNG) Between(lo, hi int32) int32 {
	if hi < lo {
		panic("core: Between called with hi < lo")
	}
	n := uint64(int64(hi)-int64(lo)) + 1
	h, l := bits.Mul64(r.src.Uint64(), n)
	if l < n {
		thresh := -n % n
		for l < thresh {
			h, l = bits.Mul64(r.src.Uint64(), n)
		}
	}
	return int32(int64(lo) + int64(h))
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
