package pricing

import (
	"feather/feature/catalog"
	"feather/feature/market"
)

// Priced is the consolidated view of one catalog item (or one phase of it).
type Priced struct {
	Item catalog.Item `json:"item"`
	// Estimate is the power mean of every valid quote; nil when no vendor quotes the item.
	Estimate *float64 `json:"estimate"`
	// Steam, Skinport and Buff are the headline quotes shown next to the estimate.
	Steam    *float64 `json:"steam"`
	Skinport *float64 `json:"skinport"`
	Buff     *float64 `json:"buff"`
}

// Collision records a catalog entry dropped because an earlier entry produced the same key.
type Collision struct {
	Key       string `json:"key"`
	KeptID    string `json:"kept_id"`
	DroppedID string `json:"dropped_id"`
}

// Stats summarizes a consolidation pass.
type Stats struct {
	// Total is the number of index entries.
	Total int `json:"total"`
	// Resolved is the number of entries whose hash name had a vendor bundle.
	Resolved int `json:"resolved"`
	// Estimated is the number of entries with an estimate.
	Estimated int `json:"estimated"`
	// Collisions is the number of dropped catalog entries.
	Collisions int `json:"collisions"`
}

// Index maps a price key to its consolidated price.
type Index map[string]Priced

// Result is the output of Consolidate.
type Result struct {
	Index      Index
	Stats      Stats
	Collisions []Collision
}

// Consolidate joins the catalog with the vendor bundles. Items are visited in ascending id
// order, so when two items share a key the lower id wins on every run.
func Consolidate(items catalog.Catalog, prices *market.Prices) Result {
	res := Result{Index: make(Index, len(items))}
	owner := make(map[string]string, len(items))

	for _, id := range items.SortedIDs() {
		item := items[id]
		if !item.Priceable() {
			continue
		}

		key := item.IndexKey()
		if kept, taken := owner[key]; taken {
			res.Collisions = append(res.Collisions, Collision{Key: key, KeptID: kept, DroppedID: id})
			continue
		}
		owner[key] = id

		priced := Priced{Item: item}
		if bundle, ok := prices.Lookup(item.MarketHashName); ok {
			res.Stats.Resolved++
			priced = price(item, bundle)
		}
		if priced.Estimate != nil {
			res.Stats.Estimated++
		}
		res.Index[key] = priced
	}

	res.Stats.Total = len(res.Index)
	res.Stats.Collisions = len(res.Collisions)
	return res
}

func price(item catalog.Item, bundle market.Bundle) Priced {
	if item.HasPhase() {
		// Phase variants only trust vendors that price the phase itself.
		return Priced{
			Item:     item,
			Estimate: PowerMean(bundle.PhaseQuotes(item.Phase)),
			Buff:     bundle.Buff163.Quote().Phase(item.Phase),
		}
	}

	return Priced{
		Item:     item,
		Estimate: PowerMean(bundle.Quotes()),
		Steam:    bundle.SteamPrice(),
		Skinport: bundle.SkinportPrice(),
		Buff:     bundle.BuffPrice(),
	}
}
