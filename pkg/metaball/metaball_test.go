package metaball

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files")

func TestGoldenSeedZero(t *testing.T) {
	got, err := Generate(0, 16, R(3, 4), R(4, 11), R(2, 4))
	require.NoError(t, err)

	path := filepath.Join("testdata", "seed0.golden")
	if *update {
		var buf bytes.Buffer
		for _, c := range got {
			fmt.Fprintf(&buf, "%d,%d\n", c.X, c.Y)
		}
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	}

	want := readGolden(t, path)
	assert.Equal(t, want, got)
	assert.Len(t, got, 64)
}

func readGolden(t *testing.T, path string) []Coord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []Coord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), ",")
		require.Len(t, parts, 2)
		x, err := strconv.ParseInt(parts[0], 10, 32)
		require.NoError(t, err)
		y, err := strconv.ParseInt(parts[1], 10, 32)
		require.NoError(t, err)
		out = append(out, Coord{X: int32(x), Y: int32(y)})
	}
	require.NoError(t, sc.Err())
	return out
}

func TestSampleSeedZero(t *testing.T) {
	balls, err := DefaultParams().Sample(0)
	require.NoError(t, err)
	assert.Equal(t, []Ball{
		{X: 7, Y: 4, Radius: 3},
		{X: 11, Y: 6, Radius: 2},
		{X: 11, Y: 4, Radius: 3},
		{X: 9, Y: 8, Radius: 3},
	}, balls)
}

func TestSampleExtremeSeeds(t *testing.T) {
	balls, err := DefaultParams().Sample(math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, []Ball{{X: 11, Y: 7, Radius: 4}, {X: 8, Y: 4, Radius: 2}, {X: 7, Y: 6, Radius: 2}}, balls)

	balls, err = DefaultParams().Sample(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, []Ball{{X: 10, Y: 5, Radius: 3}, {X: 11, Y: 10, Radius: 4}, {X: 6, Y: 5, Radius: 2}}, balls)

	balls, err = DefaultParams().Sample(-1)
	require.NoError(t, err)
	assert.Equal(t, []Ball{{X: 6, Y: 5, Radius: 4}, {X: 10, Y: 9, Radius: 2}, {X: 4, Y: 10, Radius: 4}}, balls)
}

func TestSampleCustomRanges(t *testing.T) {
	p := Params{Size: 24, Balls: R(2, 6), Position: R(0, 23), Radius: R(1, 5)}
	balls, err := p.Sample(11)
	require.NoError(t, err)
	assert.Equal(t, []Ball{
		{X: 12, Y: 15, Radius: 5},
		{X: 4, Y: 5, Radius: 3},
		{X: 14, Y: 4, Radius: 1},
		{X: 10, Y: 16, Radius: 3},
	}, balls)

	coords, err := p.Generate(11)
	require.NoError(t, err)
	assert.Len(t, coords, 84)
}

func TestDeterminism(t *testing.T) {
	p := Params{Size: 40, Balls: R(2, 9), Position: R(5, 34), Radius: R(2, 7)}
	for _, seed := range []int64{0, 1, -1, 42, 1 << 40, math.MinInt64, math.MaxInt64} {
		a, err := p.Generate(seed)
		require.NoError(t, err)
		b, err := p.Generate(seed)
		require.NoError(t, err)
		assert.Equalf(t, a, b, "seed %d", seed)
	}
}

func TestOutputIsFreshlyAllocated(t *testing.T) {
	a, err := DefaultParams().Generate(3)
	require.NoError(t, err)
	require.NotEmpty(t, a)
	a[0] = Coord{X: -1, Y: -1}

	b, err := DefaultParams().Generate(3)
	require.NoError(t, err)
	assert.NotEqual(t, Coord{X: -1, Y: -1}, b[0])
}

func TestBoundsAndOrdering(t *testing.T) {
	p := Params{Size: 32, Balls: R(1, 12), Position: R(-4, 36), Radius: R(1, 9)}
	for seed := int64(-50); seed < 50; seed++ {
		balls, err := p.Sample(seed)
		require.NoError(t, err)
		require.True(t, p.Balls.Contains(int32(len(balls))), "ball count %d", len(balls))
		for _, b := range balls {
			require.True(t, p.Position.Contains(b.X))
			require.True(t, p.Position.Contains(b.Y))
			require.True(t, p.Radius.Contains(int32(b.Radius)))
			require.Equal(t, math.Trunc(b.Radius), b.Radius)
		}

		coords, err := p.Generate(seed)
		require.NoError(t, err)
		for i, c := range coords {
			require.True(t, c.X >= 0 && c.X < p.Size && c.Y >= 0 && c.Y < p.Size, "out of bounds %v", c)
			if i == 0 {
				continue
			}
			prev := coords[i-1]
			require.True(t, prev.Y < c.Y || (prev.Y == c.Y && prev.X < c.X),
				"seed %d: %v emitted after %v", seed, c, prev)
		}
	}
}

func TestCentersAlwaysOccupied(t *testing.T) {
	p := Params{Size: 20, Balls: R(1, 6), Position: R(0, 19), Radius: R(0, 3)}
	for seed := int64(0); seed < 100; seed++ {
		balls, err := p.Sample(seed)
		require.NoError(t, err)
		coords := Evaluate(balls, p.Size)
		occupied := make(map[Coord]bool, len(coords))
		for _, c := range coords {
			occupied[c] = true
		}
		for _, b := range balls {
			assert.Truef(t, occupied[b.Center()], "seed %d: center %v not occupied", seed, b.Center())
		}
	}
}

func TestEarlyExitMatchesFullSum(t *testing.T) {
	p := Params{Size: 24, Balls: R(3, 8), Position: R(2, 21), Radius: R(1, 6)}
	for seed := int64(0); seed < 25; seed++ {
		balls, err := p.Sample(seed)
		require.NoError(t, err)
		for y := int32(0); y < p.Size; y++ {
			for x := int32(0); x < p.Size; x++ {
				full := FieldAt(balls, x, y) > Threshold
				require.Equal(t, full, Occupied(balls, x, y), "seed %d cell %d,%d", seed, x, y)
			}
		}
	}
}

func TestContribution(t *testing.T) {
	b := Ball{X: 3, Y: 3, Radius: 4}
	assert.Equal(t, Saturation, b.Contribution(0))
	assert.InDelta(t, 16.0/4.0/1.6, b.Contribution(4), 1e-12)
	assert.InDelta(t, 16.0/25.0/1.6, b.Contribution(25), 1e-12)
}

func TestExtremePositionsDoNotWrap(t *testing.T) {
	// Four balls at MinInt32 sit 2^31 away from (0, 0) on both axes, so
	// d2 = 2^63 and each adds (2^31-1)^2 / 2^63 / 1.6, about 0.3125.
	coords, err := Generate(0, 1, R(4, 4), R(math.MinInt32, math.MinInt32), R(math.MaxInt32, math.MaxInt32))
	require.NoError(t, err)
	assert.Equal(t, []Coord{{X: 0, Y: 0}}, coords)

	balls := []Ball{{X: math.MinInt32, Y: math.MinInt32, Radius: math.MaxInt32}}
	field := FieldAt(balls, math.MaxInt32, math.MaxInt32)
	assert.Greater(t, field, 0.0)
	assert.InDelta(t, 0.078125, field, 1e-6)
}

func TestNoBallsMeansEmpty(t *testing.T) {
	for _, seed := range []int64{0, 5, -77, math.MaxInt64} {
		coords, err := Generate(seed, 32, R(0, 0), R(4, 11), R(2, 4))
		require.NoError(t, err)
		assert.Empty(t, coords)
	}
}

func TestInvalidParams(t *testing.T) {
	cases := []struct {
		name  string
		p     Params
		field string
	}{
		{"inverted balls", Params{Size: 16, Balls: R(5, 2), Position: R(4, 11), Radius: R(2, 4)}, "balls"},
		{"inverted position", Params{Size: 16, Balls: R(1, 2), Position: R(11, 4), Radius: R(2, 4)}, "position"},
		{"inverted radius", Params{Size: 16, Balls: R(1, 2), Position: R(4, 11), Radius: R(4, 2)}, "radius"},
		{"negative count", Params{Size: 16, Balls: R(-1, 2), Position: R(4, 11), Radius: R(2, 4)}, "balls"},
		{"negative radius", Params{Size: 16, Balls: R(1, 2), Position: R(4, 11), Radius: R(-2, 4)}, "radius"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coords, err := tc.p.Generate(0)
			require.Error(t, err)
			assert.Nil(t, coords)
			assert.ErrorIs(t, err, ErrInvalidRange)

			var rerr *RangeError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tc.field, rerr.Field)
		})
	}

	_, err := Generate(0, 0, R(1, 2), R(0, 1), R(1, 1))
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Generate(0, -3, R(1, 2), R(0, 1), R(1, 1))
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.EqualError(t, err, "metaball: grid size must be positive, got -3")
}

func TestNegativePositionsAllowed(t *testing.T) {
	coords, err := Generate(9, 8, R(2, 3), R(-10, -5), R(1, 2))
	require.NoError(t, err)
	for _, c := range coords {
		assert.True(t, c.X >= 0 && c.Y >= 0)
	}
}
