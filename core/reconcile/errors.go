package reconcile

import "errors"

// ErrTooFewSources is returned when fewer than two sources are compared.
var ErrTooFewSources = errors.New("reconcile needs at least two sources")
