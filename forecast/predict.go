package forecast

import (
	"fmt"
	"math"

	"github.com/fctlabs/go-fct-forecast/fct"
	"github.com/fctlabs/go-fct-forecast/utils/round"
)

// ForecastIssuance extrapolates the period's total issuance linearly from the
// pace observed so far: minted / elapsed * periodLength, rounded to the
// nearest whole FCT.
//
// blocksElapsed cannot be zero for any valid period position (the current
// block counts as elapsed), but the division is guarded rather than trusted.
func ForecastIssuance(mintedSoFar float64, blocksElapsed, periodLength uint64) (float64, error) {
	if blocksElapsed == 0 {
		return 0, fmt.Errorf("forecast issuance: blocks elapsed is zero: %w", ErrDivisionByZero)
	}
	return round.HalfAway(mintedSoFar / float64(blocksElapsed) * float64(periodLength)), nil
}

// ForecastMintRate predicts the rate the protocol will set at the period
// boundary.
//
// The raw step is proportional control: the rate scales by target/forecast,
// so an under-target forecast raises the rate and an over-target forecast
// lowers it. The result is then clamped into
//
//	[round(current * MinAdjustmentFactor), min(MaxMintRateGwei, current * MaxAdjustmentFactor)]
//
// so a single noisy period cannot swing the rate by more than the bound
// multipliers allow.
//
// A zero forecasted issuance makes the step undefined and returns
// ErrDivisionByZero rather than an infinite rate.
func ForecastMintRate(currentRateGwei, targetFCT, forecastedIssuance float64, rules fct.MintRules) (float64, error) {
	if forecastedIssuance == 0 {
		return 0, fmt.Errorf("forecast mint rate: forecasted issuance is zero: %w", ErrDivisionByZero)
	}

	raw := round.HalfAway(currentRateGwei * targetFCT / forecastedIssuance)
	upper := math.Min(float64(rules.MaxMintRateGwei), currentRateGwei*rules.MaxAdjustmentFactor)
	lower := round.HalfAway(currentRateGwei * rules.MinAdjustmentFactor)

	return round.Clamp(raw, lower, upper), nil
}
