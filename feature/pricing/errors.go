package pricing

import "errors"

var (
	// ErrItemNotFound indicates no index entry has the requested key.
	ErrItemNotFound = errors.New("item not found")
	// ErrPhaseNotFound indicates the icon id has no known doppler phase.
	ErrPhaseNotFound = errors.New("phase not found")
)
