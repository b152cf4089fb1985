// Package market decodes vendor price quotes.
//
// The price feed is a JSON object keyed by market hash name. Each entry holds one sub-object per
// vendor: steam publishes trailing-window averages, skinport a lowest listing, cstrade and buff163
// a headline price plus per-phase prices for doppler variants, and four vendors publish a bare
// number. Every quote is optional; zero, negative and non-finite values read as absent.
//
// The remote feed is gzip-compressed. It is inflated completely before parsing, and the plain
// JSON is what gets cached. Vendor sub-objects are decoded independently so one malformed vendor
// never hides the others.
//
// The doppler phase map (icon id to phase label) lives here too, since phases only matter for
// the phase-aware vendors.
package market
