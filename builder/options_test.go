// File: options_test.go
// White-box tests for option resolution, policy parsing, ID schemes and
// the distinct sampler.
package builder

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, RewireDrop, cfg.rewirePolicy)
	assert.Equal(t, "cell_7", cfg.cellIDFn(7))
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(
		WithRewirePolicy(RewireResample),
		WithRewirePolicy(RewireDrop),
		WithCellPrefix("n"),
	)
	assert.Equal(t, RewireDrop, cfg.rewirePolicy)
	assert.Equal(t, "n3", cfg.cellIDFn(3))
}

func TestWithSeed_Reproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithCellIDScheme(nil) })
	assert.Panics(t, func() { WithRewirePolicy(RewirePolicy(9)) })
	assert.Panics(t, func() { CellIDFn(-1) })
}

func TestParseRewirePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    RewirePolicy
		wantErr bool
	}{
		{"drop", RewireDrop, false},
		{" Resample ", RewireResample, false},
		{"DROP", RewireDrop, false},
		{"", RewireDrop, true},
		{"retry", RewireDrop, true},
	}
	for _, tc := range tests {
		got, err := ParseRewirePolicy(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrOptionViolation, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(tc.in)), got.String())
	}
	assert.Equal(t, "RewirePolicy(5)", RewirePolicy(5).String())
}

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for k := 0; k <= 20; k++ {
		got := sampleDistinct(rng, 20, k)
		require.Len(t, got, k)
		seen := make(map[int]bool, k)
		for _, v := range got {
			require.True(t, v >= 0 && v < 20)
			require.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	}

	full := sampleDistinct(rng, 20, 20)
	sort.Ints(full)
	for i, v := range full {
		assert.Equal(t, i, v)
	}

	assert.Equal(t, []int{0, 1, 2}, sampleDistinct(nil, 20, 3))
}

func TestDrawShortcut(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		j, ok := drawShortcut(rng, 3, 1, RewireResample)
		require.True(t, ok)
		require.NotEqual(t, 1, j)
	}
	drops := 0
	for i := 0; i < 500; i++ {
		j, ok := drawShortcut(rng, 3, 1, RewireDrop)
		if !ok {
			drops++
			continue
		}
		require.NotEqual(t, 1, j)
	}
	assert.Greater(t, drops, 0)
}

func TestValidators(t *testing.T) {
	assert.ErrorIs(t, validateMin("M", "n", 2, 3), ErrTooFewNodes)
	assert.NoError(t, validateMin("M", "n", 3, 3))
	assert.ErrorIs(t, validateRange("M", "k", 0, 1, 20), ErrParameterOutOfRange)
	assert.ErrorIs(t, validateRange("M", "k", 21, 1, 20), ErrParameterOutOfRange)
	assert.NoError(t, validateRange("M", "k", 20, 1, 20))
	assert.NoError(t, validateProbability("M", 0))
	assert.NoError(t, validateProbability("M", 1))
	assert.ErrorIs(t, validateProbability("M", 1.0000001), ErrInvalidProbability)
}
