// Package forecast implements the mint-rate adjustment forecaster: a pure,
// stateless pipeline from a chain snapshot to a period-position report and a
// rate/issuance prediction.
//
// The pipeline:
//  1. validate the snapshot (non-negative, finite values)
//  2. locate the block inside its adjustment period
//  3. look up the halving-adjusted issuance target
//  4. extrapolate the period's total issuance from the pace so far
//  5. apply the bounded proportional rate step
//
// Every invocation operates on its own immutable snapshot and produces fresh
// records; calling it twice with the same snapshot yields identical output.
package forecast

import (
	"fmt"
	"math"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// Snapshot is the chain state a forecast runs on, captured atomically at
// calculation time and immutable once read.
type Snapshot struct {
	// BlockHeight is the latest chain height.
	BlockHeight idx.Block

	// PeriodMintedFCT is the FCT minted in the active adjustment period,
	// in whole-token units.
	PeriodMintedFCT float64

	// CurrentMintRateGwei is the live mint rate in gwei per unit of L1
	// data gas.
	CurrentMintRateGwei float64
}

// Prediction is the forecasted outcome of the next mint-rate adjustment.
type Prediction struct {
	// ForecastedIssuance is the period's projected total issuance (FCT)
	// if the current pace continues.
	ForecastedIssuance float64

	// TargetDifference is target minus forecast, signed: positive means
	// the period is tracking under target.
	TargetDifference float64

	// NewMintRateGwei is the rate the protocol is likely to set.
	NewMintRateGwei float64

	// PercentChangeInRate is the relative move from the current rate.
	PercentChangeInRate float64
}

// Report pairs the period view with the prediction derived from it.
type Report struct {
	Snapshot   Snapshot
	Period     Period
	Prediction Prediction
}

// Forecast runs the full pipeline on a snapshot.
//
// Failures (out-of-range input, zero denominators) abort this invocation only
// and are classified by the package error sentinels; no partial report is
// ever returned alongside an error.
func Forecast(s Snapshot, rules fct.MintRules) (*Report, error) {
	if err := validate(s, rules); err != nil {
		return nil, err
	}

	period := PeriodPosition(s.BlockHeight, rules)
	period.TargetFCT = IssuanceTarget(s.BlockHeight, rules)
	period.MintedSoFar = s.PeriodMintedFCT
	if period.TargetFCT > 0 {
		period.PercentOfTarget = s.PeriodMintedFCT / period.TargetFCT * 100
	}

	issuance, err := ForecastIssuance(s.PeriodMintedFCT, period.BlocksElapsed, uint64(rules.PeriodLength))
	if err != nil {
		return nil, err
	}

	newRate, err := ForecastMintRate(s.CurrentMintRateGwei, period.TargetFCT, issuance, rules)
	if err != nil {
		return nil, err
	}

	if s.CurrentMintRateGwei == 0 {
		return nil, fmt.Errorf("assemble prediction: current mint rate is zero: %w", ErrDivisionByZero)
	}

	return &Report{
		Snapshot: s,
		Period:   period,
		Prediction: Prediction{
			ForecastedIssuance:  issuance,
			TargetDifference:    period.TargetFCT - issuance,
			NewMintRateGwei:     newRate,
			PercentChangeInRate: (newRate - s.CurrentMintRateGwei) / s.CurrentMintRateGwei * 100,
		},
	}, nil
}

// validate rejects snapshots and rules the pipeline cannot operate on.
// Collaborators should never produce these, but the core checks anyway.
func validate(s Snapshot, rules fct.MintRules) error {
	if rules.PeriodLength == 0 {
		return fmt.Errorf("validate rules: period length is zero: %w", ErrOutOfRange)
	}
	if rules.BlocksPerHalving == 0 {
		return fmt.Errorf("validate rules: blocks per halving is zero: %w", ErrOutOfRange)
	}
	for name, v := range map[string]float64{
		"period minted FCT": s.PeriodMintedFCT,
		"current mint rate": s.CurrentMintRateGwei,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("validate snapshot: %s is not finite: %w", name, ErrOutOfRange)
		}
		if v < 0 {
			return fmt.Errorf("validate snapshot: %s is negative: %w", name, ErrOutOfRange)
		}
	}
	return nil
}
