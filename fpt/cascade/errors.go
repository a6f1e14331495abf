package cascade

import "errors"

var (
	// ErrNilWisdom is returned when a plan is created without wisdom.
	ErrNilWisdom = errors.New("cascade: nil wisdom")

	// ErrOrderOutOfRange is returned for an order outside [0, M].
	ErrOrderOutOfRange = errors.New("cascade: order out of range")

	// ErrMissingOrder is returned when the wisdom holds no tables for the
	// requested order.
	ErrMissingOrder = errors.New("cascade: order not in wisdom")

	// ErrShortCoefficients is returned when the coefficient vector holds
	// fewer than N+1 entries.
	ErrShortCoefficients = errors.New("cascade: coefficient vector too short")

	// ErrScratchMismatch is returned when a scratch was sized for another
	// number of levels.
	ErrScratchMismatch = errors.New("cascade: scratch does not match plan")
)
