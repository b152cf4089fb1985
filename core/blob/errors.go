package blob

import "errors"

var (
	// ErrNotFound indicates the blob does not exist in the store.
	ErrNotFound = errors.New("blob not found")
	// ErrInvalidID indicates a blob id that cannot be mapped safely onto the backend.
	ErrInvalidID = errors.New("invalid blob id")
	// ErrUnknownDriver indicates an unsupported cache driver.
	ErrUnknownDriver = errors.New("unknown cache driver")
)
