package forecast

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// Period is a read-only view of the adjustment period containing a block
// height. It is recomputed fresh on every forecast and never persisted.
type Period struct {
	// Index is the 1-based ordinal of the period.
	Index uint64

	// StartBlock and EndBlock delimit the period, both inclusive.
	StartBlock idx.Block
	EndBlock   idx.Block

	// BlocksElapsed counts the blocks of the period already produced,
	// including the current block. Always in [1, PeriodLength].
	BlocksElapsed uint64

	// BlocksRemaining counts the blocks still to be produced this period.
	BlocksRemaining uint64

	// PercentComplete is BlocksElapsed as a percentage of the period length.
	PercentComplete float64

	// TargetFCT is the halving-adjusted issuance target for this period.
	TargetFCT float64

	// MintedSoFar is the FCT minted in this period up to the snapshot.
	MintedSoFar float64

	// PercentOfTarget is MintedSoFar as a percentage of TargetFCT,
	// reported as 0 when the target itself is 0.
	PercentOfTarget float64
}

// PeriodPosition locates height inside its adjustment period.
//
// The current block counts as elapsed, so BlocksElapsed is never zero: height
// 0 is the first block of period 1. Target and minted fields are filled by
// the forecast pipeline, not here.
func PeriodPosition(height idx.Block, rules fct.MintRules) Period {
	length := uint64(rules.PeriodLength)
	index := uint64(height)/length + 1
	start := idx.Block((index - 1) * length)
	elapsed := uint64(height) - uint64(start) + 1

	return Period{
		Index:           index,
		StartBlock:      start,
		EndBlock:        start + idx.Block(length) - 1,
		BlocksElapsed:   elapsed,
		BlocksRemaining: length - elapsed,
		PercentComplete: float64(elapsed) / float64(length) * 100,
	}
}
