package polarcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srsnr/uci-nr/internal/polarcore"
)

func TestSelect_BasicInvariants(t *testing.T) {
	sel := polarcore.NewSelector()
	params, err := sel.Select(20, 100, 10)
	require.NoError(t, err)

	assert.Equal(t, params.K, len(params.KSet))
	assert.Equal(t, params.N-params.K, len(params.FSet))
	assert.Equal(t, 1<<uint(params.Nlog2), params.N)
	assert.LessOrEqual(t, params.N, 1<<10)

	seen := make(map[int]bool)
	for _, p := range append(append([]int{}, params.KSet...), params.FSet...) {
		assert.False(t, seen[p], "position %d listed twice", p)
		seen[p] = true
	}
	assert.Len(t, seen, params.N)
}

func TestSelect_RejectsNonPositiveK(t *testing.T) {
	sel := polarcore.NewSelector()
	_, err := sel.Select(0, 100, 10)
	require.Error(t, err)
}
