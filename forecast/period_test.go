package forecast

import (
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/stretchr/testify/require"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// TestPeriodPosition pins the worked scenario: height 12345 sits 2346 blocks
// into period 2.
func TestPeriodPosition(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	got := PeriodPosition(12345, rules)

	require.Equal(uint64(2), got.Index)
	require.Equal(idx.Block(10000), got.StartBlock)
	require.Equal(idx.Block(19999), got.EndBlock)
	require.Equal(uint64(2346), got.BlocksElapsed)
	require.Equal(uint64(7654), got.BlocksRemaining)
	require.InDelta(23.46, got.PercentComplete, 1e-9)
}

// TestPeriodPositionBoundaries covers the first block, a period's first and
// last blocks, and genesis.
func TestPeriodPositionBoundaries(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	tests := []struct {
		name          string
		height        idx.Block
		wantIndex     uint64
		wantElapsed   uint64
		wantRemaining uint64
	}{
		{"genesis", 0, 1, 1, 9999},
		{"last block of period 1", 9999, 1, 10000, 0},
		{"first block of period 2", 10000, 2, 1, 9999},
		{"last block of period 2", 19999, 2, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodPosition(tt.height, rules)
			require.Equal(tt.wantIndex, got.Index)
			require.Equal(tt.wantElapsed, got.BlocksElapsed)
			require.Equal(tt.wantRemaining, got.BlocksRemaining)
		})
	}
}

// TestPeriodPositionInvariants checks 1 <= elapsed <= length and
// start <= height <= end over a spread of heights.
func TestPeriodPositionInvariants(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	heights := []idx.Block{0, 1, 9999, 10000, 12345, 99999, 100000, 2630000, 26299999}
	for _, h := range heights {
		got := PeriodPosition(h, rules)

		require.GreaterOrEqual(got.BlocksElapsed, uint64(1), "height %d", h)
		require.LessOrEqual(got.BlocksElapsed, uint64(rules.PeriodLength), "height %d", h)
		require.LessOrEqual(got.StartBlock, h, "height %d", h)
		require.GreaterOrEqual(got.EndBlock, h, "height %d", h)
		require.Equal(uint64(rules.PeriodLength), got.BlocksElapsed+got.BlocksRemaining, "height %d", h)
	}
}
