package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Rarity describes the item's rarity tier.
type Rarity struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// ColorValue parses the 6-hex-digit color (with or without a leading '#').
func (r Rarity) ColorValue() (int, bool) {
	hex := strings.TrimPrefix(r.Color, "#")
	if len(hex) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// Item is one catalog entry. Only MarketHashName links it to vendor quotes.
type Item struct {
	ID             string  `json:"id"`
	Name           string  `json:"name,omitempty"`
	MarketHashName string  `json:"market_hash_name,omitempty"`
	Image          string  `json:"image,omitempty"`
	Rarity         *Rarity `json:"rarity,omitempty"`
	// Phase is set only for color-variant (doppler) items.
	Phase string `json:"phase,omitempty"`
}

// Priceable reports whether the item can be joined to vendor quotes.
func (i Item) Priceable() bool {
	return i.MarketHashName != ""
}

// HasPhase reports whether the item is a color variant.
func (i Item) HasPhase() bool {
	return i.Phase != ""
}

// IndexKey returns the price index key: the hash name, or "{hash name} {phase}" for variants.
func (i Item) IndexKey() string {
	if i.HasPhase() {
		return i.MarketHashName + " " + i.Phase
	}
	return i.MarketHashName
}

// Catalog maps the vendor-assigned id to its item.
type Catalog map[string]Item

// SortedIDs returns the ids in ascending order so passes over the catalog are deterministic.
func (c Catalog) SortedIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
