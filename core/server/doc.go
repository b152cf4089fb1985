// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the listen port, the
// optional API key protecting every route, and the default display currency used when a price
// request does not name one.
package server
