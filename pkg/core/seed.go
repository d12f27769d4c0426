package core

// NormalizeSeed maps a signed seed onto the unsigned seed space without
// collisions: non-negative s becomes 2s, negative s becomes -2s-1.
func NormalizeSeed(seed int64) uint64 {
	if seed >= 0 {
		return uint64(seed) << 1
	}
	// ^seed == -seed-1, which stays representable for math.MinInt64.
	return uint64(^seed)<<1 | 1
}

// Pair combines two signed integers into one unsigned value: both are
// normalized, then paired as s*(s+1) + y with s their sum. This is twice the
// Cantor triangle index, kept so derived seeds match the world generator's
// structure seeds. Arithmetic wraps.
func Pair(a, b int64) uint64 {
	x, y := NormalizeSeed(a), NormalizeSeed(b)
	s := x + y
	return s*(s+1) + y
}

// NameSum returns the byte sum of name, used to separate seeds of features
// sharing a location.
func NameSum(name string) int64 {
	var sum int64
	for i := 0; i < len(name); i++ {
		sum += int64(name[i])
	}
	return sum
}
