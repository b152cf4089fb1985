package exchange

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"feather/core/blob"
	"feather/core/dataset"
	"feather/core/fetch"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	// DatasetName identifies the exchange rate table in logs and metrics.
	DatasetName = "exchange"
	// CacheID is the blob holding the raw provider response.
	CacheID = "exchange.json"
	// DefaultURL is the provider endpoint; {token} is replaced with the configured access token.
	DefaultURL = "https://v6.exchangerate-api.com/v6/{token}/latest/USD"
	// BaseCurrency is the currency every vendor quote is denominated in.
	BaseCurrency = "USD"
)

// Rates is the provider response. Only ConversionRates is required.
type Rates struct {
	Result          string             `json:"result,omitempty"`
	ErrorType       string             `json:"error-type,omitempty"`
	BaseCode        string             `json:"base_code,omitempty"`
	LastUpdateUnix  int64              `json:"time_last_update_unix,omitempty"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Rate returns the multiplier from the base currency to code.
func (r *Rates) Rate(code string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	rate, ok := r.ConversionRates[strings.ToUpper(code)]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// Codes returns the currency codes with a rate, sorted.
func (r *Rates) Codes() []string {
	if r == nil {
		return nil
	}
	codes := make([]string, 0, len(r.ConversionRates))
	for code := range r.ConversionRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParseRates decodes a provider response.
func ParseRates(data []byte) (*Rates, error) {
	var rates Rates
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("exchange: %w", err)
	}
	if rates.Result == "error" {
		return nil, fmt.Errorf("%w: %s", ErrRatesUnavailable, rates.ErrorType)
	}
	if len(rates.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: no conversion rates", ErrRatesUnavailable)
	}
	return &rates, nil
}

// RatesURL substitutes the access token into the endpoint template.
func RatesURL(template, token string) string {
	if template == "" {
		template = DefaultURL
	}
	return strings.ReplaceAll(template, "{token}", token)
}

// NewLoader creates the cache-backed exchange rate loader. Without a token the table is
// cache-only, since the provider rejects anonymous requests.
func NewLoader(store blob.Store, fetcher fetch.Fetcher, urlTemplate, token string, logger *zap.Logger) *dataset.Loader[*Rates] {
	loader := &dataset.Loader[*Rates]{
		Name:    DatasetName,
		CacheID: CacheID,
		Parse:   ParseRates,
		Store:   store,
		Logger:  logger,
	}

	if urlTemplate == "" {
		urlTemplate = DefaultURL
	}
	if token != "" || !strings.Contains(urlTemplate, "{token}") {
		url := RatesURL(urlTemplate, token)
		loader.Fetch = func(ctx context.Context) ([]byte, error) {
			return fetcher.Fetch(ctx, url)
		}
	}
	return loader
}
