package calculation

import "errors"

// Sentinel errors for the calculation engine. Callers match them with
// errors.Is; engine functions wrap them with the failing parameter or
// period for context.
var (
	// ErrInvalidScheme is returned when a run names a scheme other than
	// NPS or UPS.
	ErrInvalidScheme = errors.New("invalid pension scheme")

	// ErrMissingParameter is returned when a required input is absent,
	// such as an early retirement without a retirement date.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidSchedule is returned when the promotion schedule cannot be
	// applied, such as a target level below the current one.
	ErrInvalidSchedule = errors.New("invalid promotion schedule")

	// ErrNotFound is returned when a rate or pay lookup falls outside the
	// covered range.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientHistory is returned when fewer salary months exist
	// than a benefit formula needs.
	ErrInsufficientHistory = errors.New("insufficient salary history")

	// ErrNoConvergence is returned when the rate-of-return solver fails to
	// converge within its iteration budget.
	ErrNoConvergence = errors.New("rate solver did not converge")
)
