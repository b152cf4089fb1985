// Package config loads the application configuration.
//
// Values come from struct-tag defaults, an optional .env file and the process environment, in
// increasing precedence. Nested keys map to upper-case environment variables with '.' replaced
// by '_', so sources.exchange_token is read from SOURCES_EXCHANGE_TOKEN.
package config
