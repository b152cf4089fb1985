// Package exchange converts and renders prices in display currencies.
//
// Exchange rates come from a provider whose endpoint embeds an access token; the raw response is
// cached under "exchange.json". Display templates are a static table embedded in the binary
// (formats.yaml), one template per ISO 4217 code with exactly one "{}" placeholder.
//
// A Formatter multiplies a base-currency (USD) amount by the rate, rounds half away from zero to
// two decimals and substitutes it into the template:
//
//	f := exchange.NewFormatter(rates, formats)
//	s, _ := f.Format(12.345, "USD") // "$12.35"
//
// Unknown codes fall back to USD unless the formatter is strict, in which case they fail with
// ErrUnknownCurrency.
package exchange
