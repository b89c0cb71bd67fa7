package forecast

import (
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/stretchr/testify/require"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// TestIssuanceTarget pins the halving schedule at its boundaries.
func TestIssuanceTarget(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	tests := []struct {
		name   string
		height idx.Block
		want   float64
	}{
		{"genesis", 0, 400000},
		{"last block before first halving", 2629999, 400000},
		{"first halving block", 2630000, 200000},
		{"inside second interval", 3000000, 200000},
		{"second halving block", 5260000, 100000},
		// 400000 / 2^10 = 390.625, floored to 390.
		{"deep halving floors", 2630000 * 10, 390},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(tt.want, IssuanceTarget(tt.height, rules))
		})
	}
}

// TestIssuanceTargetNonIncreasing verifies monotonicity across halving
// boundaries and that each step is exactly a floored halving.
func TestIssuanceTargetNonIncreasing(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	prev := IssuanceTarget(0, rules)
	for h := 1; h < 40; h++ {
		height := idx.Block(h) * rules.BlocksPerHalving
		cur := IssuanceTarget(height, rules)
		require.LessOrEqual(cur, prev, "height %d", height)

		// Inside an interval the target is flat.
		require.Equal(cur, IssuanceTarget(height+rules.BlocksPerHalving-1, rules))
		prev = cur
	}
}

// TestIssuanceTargetFloorsToZero verifies the floor-to-zero policy: once the
// halving depth exhausts the initial target the result is exactly 0, including
// at depths where a bit shift would overflow.
func TestIssuanceTargetFloorsToZero(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	// 400000 < 2^19, so 19 halvings floor to 0.
	require.Equal(float64(0), IssuanceTarget(19*rules.BlocksPerHalving, rules))

	// 64+ halvings must not overflow the shift.
	require.Equal(float64(0), IssuanceTarget(100*rules.BlocksPerHalving, rules))

	// The last non-zero step is floor(400000 / 2^18) = 1.
	require.Equal(float64(1), IssuanceTarget(18*rules.BlocksPerHalving, rules))
}
