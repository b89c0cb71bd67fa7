package forecast

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// IssuanceTarget returns the per-period issuance target (whole FCT) in effect
// at the given block height.
//
// The target starts at InitialTargetFCT and halves (floor division) every
// BlocksPerHalving blocks. It is a non-increasing step function of height and
// is allowed to reach exactly 0 once the halving depth exhausts the initial
// target; downstream math stays defined for a zero target (the rate step
// multiplies by it, never divides).
func IssuanceTarget(height idx.Block, rules fct.MintRules) float64 {
	halvings := uint64(height) / uint64(rules.BlocksPerHalving)

	// A shift of 64 or more would overflow uint64; the target is zero long
	// before that depth anyway.
	if halvings >= 64 {
		return 0
	}
	return float64(rules.InitialTargetFCT >> halvings)
}
