package exchange

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter converts base-currency amounts and renders them with the display templates.
type Formatter struct {
	rates   *Rates
	formats Formats
	strict  bool
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithStrict makes unknown currencies an error instead of falling back to the base currency.
func WithStrict(strict bool) FormatterOption {
	return func(f *Formatter) {
		f.strict = strict
	}
}

// NewFormatter creates a formatter over a rate table and a template table.
func NewFormatter(rates *Rates, formats Formats, opts ...FormatterOption) *Formatter {
	f := &Formatter{rates: rates, formats: formats}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Strict reports whether unknown currencies are rejected.
func (f *Formatter) Strict() bool {
	return f.strict
}

// Resolve returns the effective code, rate and template for code. A code is known when it has
// both a rate and a template; unknown codes resolve to the base currency unless strict.
func (f *Formatter) Resolve(code string) (string, float64, string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	rate, hasRate := f.rates.Rate(code)
	template, hasTemplate := f.formats.Template(code)
	if code == BaseCurrency && !hasRate {
		rate, hasRate = 1, true
	}
	if hasRate && hasTemplate {
		return code, rate, template, nil
	}

	if f.strict {
		return "", 0, "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	template, ok := f.formats.Template(BaseCurrency)
	if !ok {
		template = "$" + Placeholder
	}
	return BaseCurrency, 1, template, nil
}

// Convert returns value in code rounded half away from zero to two decimals.
func (f *Formatter) Convert(value float64, code string) (decimal.Decimal, string, error) {
	code, rate, _, err := f.Resolve(code)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	amount, err := convert(value, rate)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	return amount, code, nil
}

// convert multiplies value by rate, rejecting amounts decimal cannot represent.
func convert(value, rate float64) (decimal.Decimal, error) {
	if !finite(value) {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	if !finite(rate) {
		return decimal.Decimal{}, fmt.Errorf("%w: rate %v", ErrInvalidAmount, rate)
	}
	return decimal.NewFromFloat(value).Mul(decimal.NewFromFloat(rate)).Round(2), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Format renders value (in the base currency) in code, e.g. Format(12.345, "USD") = "$12.35".
func (f *Formatter) Format(value float64, code string) (string, error) {
	code, rate, template, err := f.Resolve(code)
	if err != nil {
		return "", err
	}
	if err := validTemplate(template); err != nil {
		return "", fmt.Errorf("%s: %w", code, err)
	}

	amount, err := convert(value, rate)
	if err != nil {
		return "", err
	}
	return strings.Replace(template, Placeholder, amount.StringFixed(2), 1), nil
}

// Codes returns the codes that have both a rate and a template, sorted.
func (f *Formatter) Codes() []string {
	codes := make([]string, 0, len(f.formats))
	for code := range f.formats {
		if _, ok := f.rates.Rate(code); ok || code == BaseCurrency {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Complete returns up to limit supported codes starting with the upper-cased prefix.
func (f *Formatter) Complete(prefix string, limit int) []string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))

	var out []string
	for _, code := range f.Codes() {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		out = append(out, code)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
