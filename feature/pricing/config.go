package pricing

import (
	"feather/feature/catalog"
	"feather/feature/exchange"
	"feather/feature/market"
)

// Config holds the dataset endpoints and the currency policy.
type Config struct {
	// CatalogURL is the item catalog endpoint.
	CatalogURL string `mapstructure:"catalog_url" default:"https://bymykel.github.io/CSGO-API/api/en/all.json"`
	// PricesURL is the gzip vendor price feed.
	PricesURL string `mapstructure:"prices_url" default:"https://prices.csgotrader.app/latest/prices_v6.json"`
	// ExchangeURL is the rate endpoint; {token} is replaced with ExchangeToken.
	ExchangeURL string `mapstructure:"exchange_url" default:"https://v6.exchangerate-api.com/v6/{token}/latest/USD"`
	// ExchangeToken is the rate provider access token.
	ExchangeToken string `mapstructure:"exchange_token" default:""`
	// DopplerURL is the optional phase map endpoint. Empty keeps the map cache-only.
	DopplerURL string `mapstructure:"doppler_url" default:""`
	// StrictCurrency rejects unknown display currencies instead of falling back to USD.
	StrictCurrency bool `mapstructure:"strict_currency" default:"false"`
}

// withDefaults fills empty endpoints.
func (c Config) withDefaults() Config {
	if c.CatalogURL == "" {
		c.CatalogURL = catalog.DefaultURL
	}
	if c.PricesURL == "" {
		c.PricesURL = market.DefaultURL
	}
	if c.ExchangeURL == "" {
		c.ExchangeURL = exchange.DefaultURL
	}
	return c
}
