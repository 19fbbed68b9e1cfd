package flake

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLatestIsMaximum tests Property: Latest returns the maximum instant of any
// non-empty input set
func TestLatestIsMaximum(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Latest equals max of values", prop.ForAll(
		func(first int64, rest []int64) bool {
			inputs := map[string]time.Time{"input-0": time.Unix(first, 0)}
			max := first
			for i, secs := range rest {
				inputs[fmt.Sprintf("input-%d", i+1)] = time.Unix(secs, 0)
				if secs > max {
					max = secs
				}
			}

			set, err := NewInputSet(inputs)
			if err != nil {
				return false
			}
			return set.Latest().Equal(time.Unix(max, 0)) && set.Latest().Unix() == max
		},
		gen.Int64Range(-4000000000, 4000000000),
		gen.SliceOf(gen.Int64Range(-4000000000, 4000000000)),
	))

	properties.TestingRun(t)
}

func TestNewInputSetEmpty(t *testing.T) {
	_, err := NewInputSet(map[string]time.Time{})
	assert.ErrorIs(t, err, ErrNoInputs)

	_, err = NewInputSet(nil)
	assert.ErrorIs(t, err, ErrNoInputs)
}

func TestNewInputSetCopiesAndNormalizes(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	source := map[string]time.Time{
		"nixpkgs": time.Date(2024, 1, 15, 11, 30, 0, 0, zone),
	}

	set, err := NewInputSet(source)
	require.NoError(t, err)

	source["other"] = time.Now()
	assert.Equal(t, 1, set.Len(), "later changes to the source map must not leak in")

	got, ok := set.Get("nixpkgs")
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 9, got.Hour())
}

func TestInputsSortedByName(t *testing.T) {
	set, err := NewInputSet(map[string]time.Time{
		"nixpkgs":      time.Unix(300, 0),
		"flake-utils":  time.Unix(100, 0),
		"home-manager": time.Unix(200, 0),
	})
	require.NoError(t, err)

	names := []string{}
	for _, in := range set.Inputs() {
		names = append(names, in.Name)
	}
	assert.Equal(t, []string{"flake-utils", "home-manager", "nixpkgs"}, names)
}

func TestLatestInputTieBreaksByName(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	set, err := NewInputSet(map[string]time.Time{
		"zeta":  ts,
		"alpha": ts,
		"old":   ts.Add(-time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, "alpha", set.LatestInput().Name)
	assert.True(t, set.Latest().Equal(ts))
}
