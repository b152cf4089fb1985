package market

import "math"

// Valid returns v when it holds a usable price: present, finite and strictly positive.
// Vendors publish 0 (and occasionally negatives) for "no listing"; those read as absent.
func Valid(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return nil
	}
	return v
}

// Windowed holds trailing-window averages, newest window first.
type Windowed struct {
	Last24h *float64 `json:"last_24h"`
	Last7d  *float64 `json:"last_7d"`
	Last30d *float64 `json:"last_30d"`
	Last90d *float64 `json:"last_90d"`
}

// Resolve returns the most recent valid window, preferring 24h, then 7d, 30d and 90d.
func (w *Windowed) Resolve() *float64 {
	if w == nil {
		return nil
	}
	for _, v := range []*float64{w.Last24h, w.Last7d, w.Last30d, w.Last90d} {
		if p := Valid(v); p != nil {
			return p
		}
	}
	return nil
}

// Listing is a single lowest-listing quote.
type Listing struct {
	StartingAt *float64 `json:"starting_at"`
}

// Price returns the valid listing price.
func (l *Listing) Price() *float64 {
	if l == nil {
		return nil
	}
	return Valid(l.StartingAt)
}

// PhasePrice is a quote with optional per-phase prices for color variants.
type PhasePrice struct {
	Price   *float64            `json:"price"`
	Doppler map[string]*float64 `json:"doppler"`
}

// Headline returns the valid non-phase price.
func (p *PhasePrice) Headline() *float64 {
	if p == nil {
		return nil
	}
	return Valid(p.Price)
}

// Phase returns the valid price for the given phase label.
func (p *PhasePrice) Phase(phase string) *float64 {
	if p == nil || p.Doppler == nil {
		return nil
	}
	return Valid(p.Doppler[phase])
}

// BuffListing wraps the phase-aware lowest listing.
type BuffListing struct {
	StartingAt *PhasePrice `json:"starting_at"`
}

// Quote returns the phase-aware quote, which may be nil.
func (b *BuffListing) Quote() *PhasePrice {
	if b == nil {
		return nil
	}
	return b.StartingAt
}

// Bundle holds every vendor quote known for one market hash name. A nil field means the vendor
// published nothing usable for the item.
type Bundle struct {
	Steam      *Windowed    `json:"steam,omitempty"`
	Skinport   *Listing     `json:"skinport,omitempty"`
	CSTrade    *PhasePrice  `json:"cstrade,omitempty"`
	Buff163    *BuffListing `json:"buff163,omitempty"`
	LootFarm   *float64     `json:"lootfarm,omitempty"`
	CSGOEmpire *float64     `json:"csgoempire,omitempty"`
	SwapGG     *float64     `json:"swapgg,omitempty"`
	SkinWallet *float64     `json:"skinwallet,omitempty"`
}

// SteamPrice is the resolved windowed steam price.
func (b Bundle) SteamPrice() *float64 {
	return b.Steam.Resolve()
}

// SkinportPrice is the skinport lowest listing.
func (b Bundle) SkinportPrice() *float64 {
	return b.Skinport.Price()
}

// BuffPrice is the non-phase buff163 price.
func (b Bundle) BuffPrice() *float64 {
	return b.Buff163.Quote().Headline()
}

// Quotes returns the valid non-phase quotes in fixed vendor order.
func (b Bundle) Quotes() []float64 {
	candidates := []*float64{
		b.SteamPrice(),
		b.CSTrade.Headline(),
		b.SkinportPrice(),
		b.BuffPrice(),
		b.LootFarm,
		b.CSGOEmpire,
		b.SwapGG,
		b.SkinWallet,
	}
	return collect(candidates)
}

// PhaseQuotes returns the valid quotes for a color variant. Only the phase-aware vendors
// (cstrade, buff163) price individual phases.
func (b Bundle) PhaseQuotes(phase string) []float64 {
	return collect([]*float64{
		b.CSTrade.Phase(phase),
		b.Buff163.Quote().Phase(phase),
	})
}

func collect(candidates []*float64) []float64 {
	out := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		if v := Valid(c); v != nil {
			out = append(out, *v)
		}
	}
	return out
}
