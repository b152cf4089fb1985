package pricing

import (
	"sort"
	"time"

	"feather/feature/catalog"
	"feather/feature/exchange"
	"feather/feature/market"
)

// Snapshot is an immutable view of every dataset and the index built from them.
// It is replaced wholesale on refresh and never mutated afterwards.
type Snapshot struct {
	catalog    catalog.Catalog
	prices     *market.Prices
	phases     market.PhaseMap
	rates      *exchange.Rates
	index      Index
	keys       []string
	stats      Stats
	collisions []Collision
	formatter  *exchange.Formatter
	report     Report
	builtAt    time.Time
}

// NewSnapshot consolidates the datasets into a snapshot. Nil datasets are treated as empty.
func NewSnapshot(items catalog.Catalog, prices *market.Prices, phases market.PhaseMap, rates *exchange.Rates, formatter *exchange.Formatter) *Snapshot {
	if items == nil {
		items = catalog.Catalog{}
	}
	if prices == nil {
		prices = &market.Prices{Bundles: map[string]market.Bundle{}, Skipped: map[string]int{}}
	}
	if phases == nil {
		phases = market.PhaseMap{}
	}
	if formatter == nil {
		formats, _ := exchange.DefaultFormats()
		formatter = exchange.NewFormatter(rates, formats)
	}

	res := Consolidate(items, prices)

	keys := make([]string, 0, len(res.Index))
	for key := range res.Index {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Snapshot{
		catalog:    items,
		prices:     prices,
		phases:     phases,
		rates:      rates,
		index:      res.Index,
		keys:       keys,
		stats:      res.Stats,
		collisions: res.Collisions,
		formatter:  formatter,
		builtAt:    time.Now(),
	}
}

// Lookup returns the consolidated price for an exact key.
func (s *Snapshot) Lookup(key string) (Priced, bool) {
	p, ok := s.index[key]
	return p, ok
}

// Phase returns the doppler phase label for an icon id.
func (s *Snapshot) Phase(icon string) (string, bool) {
	return s.phases.Phase(icon)
}

// Formatter returns the currency formatter bound to this snapshot's rates.
func (s *Snapshot) Formatter() *exchange.Formatter {
	return s.formatter
}

// Stats returns the consolidation counters.
func (s *Snapshot) Stats() Stats {
	return s.stats
}

// Collisions returns the catalog entries dropped for duplicate keys.
func (s *Snapshot) Collisions() []Collision {
	return s.collisions
}

// Keys returns every index key, sorted. Callers must not modify the slice.
func (s *Snapshot) Keys() []string {
	return s.keys
}

// Search returns up to limit keys matching query.
func (s *Snapshot) Search(query string, limit int) []string {
	return search(s.keys, query, limit)
}

// Report returns the per-dataset outcome of the build that produced the snapshot.
func (s *Snapshot) Report() Report {
	return s.report
}

// BuiltAt returns when the snapshot was consolidated.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// Catalog returns the catalog the snapshot was built from.
func (s *Snapshot) Catalog() catalog.Catalog {
	return s.catalog
}

// Prices returns the vendor price feed the snapshot was built from.
func (s *Snapshot) Prices() *market.Prices {
	return s.prices
}

// Rates returns the exchange rate table, nil when it failed to load.
func (s *Snapshot) Rates() *exchange.Rates {
	return s.rates
}

// PhaseCount returns the number of known doppler icons.
func (s *Snapshot) PhaseCount() int {
	return len(s.phases)
}
