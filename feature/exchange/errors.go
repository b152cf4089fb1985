package exchange

import "errors"

var (
	// ErrUnknownCurrency indicates a code without both a rate and a display template.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrMalformedTemplate indicates a display template without exactly one "{}" placeholder.
	ErrMalformedTemplate = errors.New("malformed currency template")
	// ErrRatesUnavailable indicates the rate provider answered without usable rates.
	ErrRatesUnavailable = errors.New("exchange rates unavailable")
	// ErrInvalidAmount indicates a NaN or infinite amount.
	ErrInvalidAmount = errors.New("invalid amount")
)
