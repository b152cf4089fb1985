package market

import "errors"

var (
	// ErrNotObject indicates the price payload is not a JSON object keyed by hash name.
	ErrNotObject = errors.New("price payload is not an object")
	// ErrDecompress indicates a gzip payload could not be inflated.
	ErrDecompress = errors.New("failed to decompress payload")
)
