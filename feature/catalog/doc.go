// Package catalog loads the tradable-item catalog.
//
// The catalog is a JSON object keyed by a vendor-assigned item id. Each item may carry a market hash
// name (the canonical trade name vendors quote against), an image URL, a rarity with a 6-hex-digit
// color, and a doppler phase for color variants. Items without a hash name cannot be priced.
//
// The payload is cached verbatim under "all.json" and loaded through core/dataset.
package catalog
