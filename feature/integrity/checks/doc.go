// Package checks holds the individual integrity checks: dataset cache presence, snapshot health
// and history table schema.
package checks
