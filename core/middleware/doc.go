// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation for the price API.
//   - rayid: a per-request id stored in the context and echoed in the X-Ray-ID response header.
package middleware
