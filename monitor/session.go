// Package monitor wraps the forecast pipeline for interactive use. A Session
// owns the upstream reader, runs one calculation per refresh, and retains the
// last successfully computed report so a failed refresh never blanks or
// corrupts what the user is looking at.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/sirupsen/logrus"

	"github.com/fctlabs/go-fct-forecast/chain"
	"github.com/fctlabs/go-fct-forecast/fct"
	"github.com/fctlabs/go-fct-forecast/forecast"
)

// Status is the lifecycle state of a Session's current outcome.
type Status int

const (
	// Pending means no calculation has completed yet.
	Pending Status = iota

	// Success means the outcome carries a freshly computed report.
	Success

	// Failure means the latest refresh failed; Report still holds the
	// previous successful result, if any.
	Failure
)

// String returns the lowercase identifier used in logs.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "invalid"
}

// Outcome is the result variant handed to renderers: exactly one of
// {Pending, Success(report), Failure(err, prior report)}.
type Outcome struct {
	Status Status

	// Report is the latest successfully computed report. On Failure it is
	// the retained previous report (nil if none ever succeeded).
	Report *forecast.Report

	// Err is set on Failure only.
	Err error

	// Generation identifies which refresh produced this outcome.
	Generation uint64
}

// Session serializes the visible state of repeated forecast invocations.
// Concurrent refreshes are tolerated: each is tagged with a generation
// number, and a refresh that finishes after a newer one was issued is
// discarded instead of overwriting the newer result.
type Session struct {
	reader chain.Reader
	rules  fct.MintRules
	log    *logrus.Logger

	mu   sync.Mutex
	gen  uint64
	last Outcome
}

// NewSession creates a session in the Pending state.
func NewSession(reader chain.Reader, rules fct.MintRules, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{
		reader: reader,
		rules:  rules,
		log:    log,
		last:   Outcome{Status: Pending},
	}
}

// Latest returns the current outcome without triggering a calculation.
func (s *Session) Latest() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Refresh fetches a fresh snapshot and recomputes the report.
//
// The two collaborator reads are independent and issued concurrently. The
// forecast itself runs synchronously; only the reads observe ctx. If a newer
// refresh was issued while this one was in flight, its result is discarded
// and the newer outcome is returned instead.
func (s *Session) Refresh(ctx context.Context) Outcome {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	var (
		height    idx.Block
		state     chain.MintState
		heightErr error
		stateErr  error
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		height, heightErr = s.reader.LatestBlockNumber(ctx)
	}()
	go func() {
		defer wg.Done()
		state, stateErr = s.reader.MintState(ctx)
	}()
	wg.Wait()

	report, err := s.compute(height, state, heightErr, stateErr)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.WithFields(logrus.Fields{
			"generation": gen,
			"latest":     s.gen,
		}).Debug("discarding stale refresh")
		return s.last
	}

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"generation": gen,
			"kind":       forecast.Kind(err),
		}).WithError(err).Warn("forecast refresh failed")
		s.last = Outcome{
			Status:     Failure,
			Report:     s.last.Report,
			Err:        err,
			Generation: gen,
		}
		return s.last
	}

	s.log.WithFields(logrus.Fields{
		"generation":   gen,
		"height":       uint64(report.Snapshot.BlockHeight),
		"period":       report.Period.Index,
		"minted_fct":   report.Period.MintedSoFar,
		"forecast_fct": report.Prediction.ForecastedIssuance,
		"new_rate":     report.Prediction.NewMintRateGwei,
	}).Info("forecast refreshed")
	s.last = Outcome{
		Status:     Success,
		Report:     report,
		Generation: gen,
	}
	return s.last
}

// compute folds the read errors and the pipeline into a single result.
func (s *Session) compute(height idx.Block, state chain.MintState, heightErr, stateErr error) (*forecast.Report, error) {
	if heightErr != nil {
		return nil, heightErr
	}
	if stateErr != nil {
		return nil, stateErr
	}
	return forecast.Forecast(forecast.Snapshot{
		BlockHeight:         height,
		PeriodMintedFCT:     state.PeriodMintedFCT,
		CurrentMintRateGwei: state.MintRateGwei,
	}, s.rules)
}

// Watch refreshes immediately and then on every tick until ctx is canceled,
// invoking fn with each non-stale outcome. Failed refreshes are not retried
// before the next tick.
func (s *Session) Watch(ctx context.Context, interval time.Duration, fn func(Outcome)) {
	fn(s.Refresh(ctx))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.WithField("reason", ctx.Err()).Info("watch stopped")
			return
		case <-ticker.C:
			fn(s.Refresh(ctx))
		}
	}
}
