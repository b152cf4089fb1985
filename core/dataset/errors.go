package dataset

import "errors"

var (
	// ErrCacheMiss indicates the cached payload was absent or unreadable. It triggers a refresh and
	// is only returned when a caller reads the cache directly.
	ErrCacheMiss = errors.New("cache miss")
	// ErrParse indicates a payload does not match the expected shape.
	ErrParse = errors.New("failed to parse payload")
	// ErrNoRemote indicates the dataset has no remote source configured.
	ErrNoRemote = errors.New("no remote source configured")
)
