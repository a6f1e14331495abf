package wisdom

import "errors"

var (
	// ErrInvalidBandwidth is returned when the bandwidth M is below 1.
	ErrInvalidBandwidth = errors.New("wisdom: bandwidth must be >= 1")

	// ErrInvalidOrders is returned when the requested order range is empty
	// or leaves [0, M].
	ErrInvalidOrders = errors.New("wisdom: invalid order range")

	// ErrNilRecurrence is returned when Precompute gets no recurrence.
	ErrNilRecurrence = errors.New("wisdom: nil recurrence")

	// ErrNonFinite is returned when a recurrence yields NaN or Inf.
	ErrNonFinite = errors.New("wisdom: non-finite recurrence coefficient")

	// ErrOrderNotComputed is returned when a table for an order outside the
	// precomputed range is requested.
	ErrOrderNotComputed = errors.New("wisdom: order not precomputed")
)
