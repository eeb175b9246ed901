package target

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	for _, want := range []string{"damped", "runge", "gauss", "sinc", "poly"} {
		assert.Contains(t, names, want)
	}

	_, err := Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

func TestTargetValues(t *testing.T) {
	damped, err := Get("damped")
	require.NoError(t, err)
	assert.Equal(t, 0.0, damped.Fn(0))
	assert.Less(t, damped.Lo, damped.Hi)

	runge, err := Get("runge")
	require.NoError(t, err)
	assert.Equal(t, 1.0, runge.Fn(0))
	assert.InDelta(t, 1.0/26.0, runge.Fn(1), 1e-12)

	sinc, err := Get("sinc")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sinc.Fn(0), "removable singularity at 0")
	assert.InDelta(t, math.Sin(2)/2, sinc.Fn(2), 1e-12)
}
