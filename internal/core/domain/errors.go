package domain

import "errors"

// Sentinel errors shared across the core. Callers branch with errors.Is;
// persistence failures from store adapters are wrapped, never replaced.
var (
	ErrSeatNotFound       = errors.New("seat not found")
	ErrSeatUnavailable    = errors.New("seat already sold")
	ErrMissingBookingData = errors.New("booking is missing movie, date or time slot")
	ErrTicketNotFound     = errors.New("ticket not found")
)
