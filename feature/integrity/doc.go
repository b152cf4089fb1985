// Package integrity provides health checks for the price service.
//
// # Checks Provided
//
//   - Datasets: every dataset payload (all.json, prices.json, exchange.json, doppler.json) is cached.
//   - Snapshot: the published snapshot loaded every dataset, has no more than half of its items
//     without vendor quotes, and lists key collisions and skipped vendor quotes.
//   - Coverage: catalog hash names versus vendor hash names, and estimated keys versus keys
//     recorded in price history.
//   - Schema: the price_points table has every column of the history model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/datasets : Runs the dataset cache check (supports ?fix=true).
//   - GET /integrity/snapshot : Runs the snapshot check.
//   - GET /integrity/coverage : Runs the coverage reconciliation.
//   - GET /integrity/schema : Runs the schema check.
package integrity
