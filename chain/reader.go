// Package chain provides the two collaborator reads the forecaster depends
// on: the latest block height and the mint-tracker state for the active
// adjustment period. The Reader interface exists so the forecast and monitor
// packages can be tested deterministically against fakes, with the
// go-ethereum backed implementation as the production reader.
package chain

import (
	"context"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
)

// MintState is the mint-tracker view of the active adjustment period,
// converted to reporting units.
type MintState struct {
	// PeriodMintedFCT is the FCT minted so far this period, in whole-token
	// units.
	PeriodMintedFCT float64

	// MintRateGwei is the live mint rate in gwei per unit of L1 data gas.
	MintRateGwei float64
}

// Reader abstracts the upstream chain access. Both reads are independent and
// may be issued concurrently; each must honor ctx cancellation and deadlines.
type Reader interface {
	// LatestBlockNumber returns the current chain height.
	LatestBlockNumber(ctx context.Context) (idx.Block, error)

	// MintState returns the mint-tracker counters for the active period.
	MintState(ctx context.Context) (MintState, error)
}

// WithTimeout wraps a Reader so every read carries its own deadline on top of
// whatever deadline the caller's context already has.
func WithTimeout(r Reader, d time.Duration) Reader {
	return &timeoutReader{inner: r, timeout: d}
}

type timeoutReader struct {
	inner   Reader
	timeout time.Duration
}

func (t *timeoutReader) LatestBlockNumber(ctx context.Context) (idx.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.LatestBlockNumber(ctx)
}

func (t *timeoutReader) MintState(ctx context.Context) (MintState, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.MintState(ctx)
}
