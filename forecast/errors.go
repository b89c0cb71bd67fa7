package forecast

import "errors"

// Failure kinds for a forecast invocation. All of them are non-fatal: they
// abort the current calculation only, and the caller keeps whatever report it
// computed last. Match with errors.Is.
var (
	// ErrUpstreamUnavailable marks a failed or malformed collaborator read
	// (block height source or mint-tracker state).
	ErrUpstreamUnavailable = errors.New("upstream data unavailable")

	// ErrDivisionByZero marks a zero denominator at a step that requires
	// division: blocks elapsed, forecasted issuance, or current mint rate.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOutOfRange marks a snapshot value outside its valid domain
	// (negative counters, NaN, infinities).
	ErrOutOfRange = errors.New("input out of range")
)

// Kind returns a short identifier for the failure class of err, or "unknown"
// if err does not wrap one of the package sentinels. Renderers use it to label
// the single user-visible failure message.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	}
	return "unknown"
}
