// Package fetch downloads remote dataset payloads.
//
// The Fetcher interface is the single "fetch bytes from URL" capability the dataset loaders depend on.
// Client implements it over net/http with functional options, bounded retries for network errors,
// 429 and 5xx responses, and redaction of secrets (such as the exchange-rate token embedded in the
// request path) from every error and log line.
//
// # Usage
//
//	client := fetch.NewClientFromConfig(cfg.Fetch, fetch.WithLogger(log), fetch.WithSecrets(token))
//	body, err := client.Fetch(ctx, url)
package fetch
