package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultCurrency is used when a request does not ask for a display currency.
	DefaultCurrency string `mapstructure:"default_currency" default:"USD"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.ApiKey) != ""
}

// Currency returns the upper-cased default display currency, falling back to USD.
func (c Config) Currency() string {
	code := strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))
	if code == "" {
		return "USD"
	}
	return code
}
