// Package render turns forecast outcomes into a plain-text report for the
// terminal. It is presentation glue only; all numbers arrive precomputed.
package render

import (
	"fmt"
	"io"

	"github.com/fctlabs/go-fct-forecast/forecast"
	"github.com/fctlabs/go-fct-forecast/monitor"
)

// Write renders an outcome to w.
//
// A Failure is rendered as a single error line followed by the retained
// previous report, if any; a partial report is never shown. Pending renders
// a placeholder line.
func Write(w io.Writer, o monitor.Outcome) error {
	switch o.Status {
	case monitor.Pending:
		_, err := fmt.Fprintln(w, "forecast pending: no calculation has completed yet")
		return err
	case monitor.Failure:
		if _, err := fmt.Fprintf(w, "forecast failed (%s): %v\n", forecast.Kind(o.Err), o.Err); err != nil {
			return err
		}
		if o.Report == nil {
			return nil
		}
		if _, err := fmt.Fprintln(w, "showing last successful forecast:"); err != nil {
			return err
		}
		return writeReport(w, o.Report)
	case monitor.Success:
		return writeReport(w, o.Report)
	}
	return fmt.Errorf("render: invalid outcome status %d", o.Status)
}

func writeReport(w io.Writer, r *forecast.Report) error {
	p := r.Period
	pr := r.Prediction

	_, err := fmt.Fprintf(w, ""+
		"FCT mint-rate forecast\n"+
		"  block height        %d\n"+
		"  period              #%d (blocks %d..%d)\n"+
		"  progress            %d/%d blocks (%.2f%%), %d remaining\n"+
		"  period target       %.0f FCT\n"+
		"  minted so far       %.2f FCT (%.2f%% of target)\n"+
		"\n"+
		"  forecasted issuance %.0f FCT\n"+
		"  vs target           %+.0f FCT\n"+
		"  current mint rate   %.2f gwei\n"+
		"  predicted mint rate %.2f gwei (%+.2f%%)\n",
		uint64(r.Snapshot.BlockHeight),
		p.Index, uint64(p.StartBlock), uint64(p.EndBlock),
		p.BlocksElapsed, p.BlocksElapsed+p.BlocksRemaining, p.PercentComplete, p.BlocksRemaining,
		p.TargetFCT,
		p.MintedSoFar, p.PercentOfTarget,
		pr.ForecastedIssuance,
		pr.TargetDifference,
		r.Snapshot.CurrentMintRateGwei,
		pr.NewMintRateGwei, pr.PercentChangeInRate,
	)
	return err
}
