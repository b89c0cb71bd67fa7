package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// TestForecast runs the whole pipeline on a mid-period snapshot and checks
// every derived field.
func TestForecast(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	// 2346 blocks into period 2, minting at a pace that would close the
	// period at 200000 FCT against a 400000 target.
	snap := Snapshot{
		BlockHeight:         12345,
		PeriodMintedFCT:     46920, // 20 FCT per block over 2346 blocks
		CurrentMintRateGwei: 1000,
	}

	report, err := Forecast(snap, rules)
	require.NoError(err)

	require.Equal(snap, report.Snapshot)

	require.Equal(uint64(2), report.Period.Index)
	require.Equal(uint64(2346), report.Period.BlocksElapsed)
	require.Equal(float64(400000), report.Period.TargetFCT)
	require.Equal(float64(46920), report.Period.MintedSoFar)
	require.InDelta(11.73, report.Period.PercentOfTarget, 1e-9)

	require.Equal(float64(200000), report.Prediction.ForecastedIssuance)
	require.Equal(float64(200000), report.Prediction.TargetDifference)
	require.Equal(float64(2000), report.Prediction.NewMintRateGwei)
	require.InDelta(100, report.Prediction.PercentChangeInRate, 1e-9)
}

// TestForecastIdempotent verifies that identical snapshots produce
// bit-identical reports.
func TestForecastIdempotent(t *testing.T) {
	require := require.New(t)
	rules := fct.DefaultMintRules()

	snap := Snapshot{BlockHeight: 987654, PeriodMintedFCT: 133700.25, CurrentMintRateGwei: 4321.5}

	a, err := Forecast(snap, rules)
	require.NoError(err)
	b, err := Forecast(snap, rules)
	require.NoError(err)
	require.Equal(a, b)
}

// TestForecastFailures covers the error taxonomy: out-of-range snapshots and
// zero denominators abort the invocation with a classified error and no
// partial report.
func TestForecastFailures(t *testing.T) {
	rules := fct.DefaultMintRules()

	tests := []struct {
		name string
		snap Snapshot
		want error
	}{
		{"negative minted", Snapshot{BlockHeight: 100, PeriodMintedFCT: -1, CurrentMintRateGwei: 1000}, ErrOutOfRange},
		{"negative rate", Snapshot{BlockHeight: 100, PeriodMintedFCT: 10, CurrentMintRateGwei: -5}, ErrOutOfRange},
		{"NaN minted", Snapshot{BlockHeight: 100, PeriodMintedFCT: math.NaN(), CurrentMintRateGwei: 1000}, ErrOutOfRange},
		{"Inf rate", Snapshot{BlockHeight: 100, PeriodMintedFCT: 10, CurrentMintRateGwei: math.Inf(1)}, ErrOutOfRange},
		{"zero forecast", Snapshot{BlockHeight: 100, PeriodMintedFCT: 0, CurrentMintRateGwei: 1000}, ErrDivisionByZero},
		{"zero rate", Snapshot{BlockHeight: 100, PeriodMintedFCT: 10, CurrentMintRateGwei: 0}, ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Forecast(tt.snap, rules)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, report)
		})
	}
}

// TestForecastZeroRules verifies that degenerate rules are rejected instead
// of dividing by zero.
func TestForecastZeroRules(t *testing.T) {
	snap := Snapshot{BlockHeight: 100, PeriodMintedFCT: 10, CurrentMintRateGwei: 1000}

	bad := fct.DefaultMintRules()
	bad.PeriodLength = 0
	_, err := Forecast(snap, bad)
	require.ErrorIs(t, err, ErrOutOfRange)

	bad = fct.DefaultMintRules()
	bad.BlocksPerHalving = 0
	_, err = Forecast(snap, bad)
	require.ErrorIs(t, err, ErrOutOfRange)
}

// TestKind verifies the failure classifier used for user-visible messages.
func TestKind(t *testing.T) {
	require := require.New(t)

	require.Equal("none", Kind(nil))
	require.Equal("division_by_zero", Kind(ErrDivisionByZero))
	require.Equal("out_of_range", Kind(ErrOutOfRange))
	require.Equal("upstream_unavailable", Kind(ErrUpstreamUnavailable))

	_, err := ForecastIssuance(1, 0, 10)
	require.Equal("division_by_zero", Kind(err))

	require.Equal("unknown", Kind(errors.New("some other failure")))
}
