// Package history records consolidated prices over time.
//
// Each capture stores one PricePoint per estimated index entry (key, estimate and the steam,
// skinport and buff headline quotes, all in USD) in the price_points table via GORM. Points are
// written in batches of BatchSize and read back newest first. The feature is disabled when no
// database is configured.
package history
