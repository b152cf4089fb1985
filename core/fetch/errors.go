package fetch

import "errors"

var (
	// ErrRemoteFetch indicates the remote dataset could not be downloaded.
	ErrRemoteFetch = errors.New("remote fetch failed")
	// ErrUnexpectedStatus indicates a non-success HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)
