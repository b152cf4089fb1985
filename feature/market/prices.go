package market

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"feather/core/blob"
	"feather/core/dataset"
	"feather/core/fetch"
	"feather/core/metrics"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

const (
	// DatasetName identifies the vendor price feed in logs and metrics.
	DatasetName = "prices"
	// CacheID is the blob holding the decompressed price payload.
	CacheID = "prices.json"
	// DefaultURL is the public, gzip-compressed price feed.
	DefaultURL = "https://prices.csgotrader.app/latest/prices_v6.json"
)

// Vendor names as they appear in the payload.
const (
	VendorSteam      = "steam"
	VendorSkinport   = "skinport"
	VendorCSTrade    = "cstrade"
	VendorBuff163    = "buff163"
	VendorLootFarm   = "lootfarm"
	VendorCSGOEmpire = "csgoempire"
	VendorSwapGG     = "swapgg"
	VendorSkinWallet = "skinwallet"
)

// itemVendor labels decode failures of a whole item entry.
const itemVendor = "item"

// Prices is the decoded price feed keyed by market hash name.
type Prices struct {
	Bundles map[string]Bundle
	// Skipped counts vendor sub-objects that could not be decoded, by vendor.
	Skipped map[string]int
}

// Lookup returns the bundle for a market hash name.
func (p *Prices) Lookup(hashName string) (Bundle, bool) {
	if p == nil {
		return Bundle{}, false
	}
	b, ok := p.Bundles[hashName]
	return b, ok
}

// Len returns the number of hash names with a bundle.
func (p *Prices) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Bundles)
}

// Names returns every hash name with a bundle, sorted.
func (p *Prices) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Bundles))
	for name := range p.Bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SkippedVendors returns the vendors with decode failures, sorted.
func (p *Prices) SkippedVendors() []string {
	vendors := make([]string, 0, len(p.Skipped))
	for v := range p.Skipped {
		vendors = append(vendors, v)
	}
	sort.Strings(vendors)
	return vendors
}

// IsGzip reports whether data starts with the gzip magic number.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

// Decompress inflates a gzip payload completely. Non-gzip input is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	if !IsGzip(data) {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	return out, nil
}

// Parse decodes the price feed. Each vendor sub-object is decoded on its own: a malformed entry
// leaves that vendor absent for that item and is counted, never failing the whole payload.
func Parse(data []byte) (*Prices, error) {
	data, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	if raw == nil {
		return nil, ErrNotObject
	}

	prices := &Prices{
		Bundles: make(map[string]Bundle, len(raw)),
		Skipped: make(map[string]int),
	}

	for name, entry := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			prices.skip(itemVendor)
			continue
		}
		prices.Bundles[name] = prices.decodeBundle(fields)
	}

	for vendor, n := range prices.Skipped {
		metrics.VendorDecodeErrorsTotal.WithLabelValues(vendor).Add(float64(n))
	}

	return prices, nil
}

func (p *Prices) decodeBundle(fields map[string]json.RawMessage) Bundle {
	var b Bundle
	b.Steam = decodeVendor[Windowed](p, fields, VendorSteam)
	b.Skinport = decodeVendor[Listing](p, fields, VendorSkinport)
	b.CSTrade = decodeVendor[PhasePrice](p, fields, VendorCSTrade)
	b.Buff163 = decodeVendor[BuffListing](p, fields, VendorBuff163)
	b.LootFarm = Valid(decodeVendor[float64](p, fields, VendorLootFarm))
	b.CSGOEmpire = Valid(decodeVendor[float64](p, fields, VendorCSGOEmpire))
	b.SwapGG = Valid(decodeVendor[float64](p, fields, VendorSwapGG))
	b.SkinWallet = Valid(decodeVendor[float64](p, fields, VendorSkinWallet))
	return b
}

// decodeVendor decodes one vendor field. Missing and null fields are absent without counting.
func decodeVendor[T any](p *Prices, fields map[string]json.RawMessage, vendor string) *T {
	raw, ok := fields[vendor]
	if !ok || len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		p.skip(vendor)
		return nil
	}
	return v
}

func (p *Prices) skip(vendor string) {
	p.Skipped[vendor]++
}

// NewLoader creates the cache-backed price feed loader. The remote payload is decompressed
// before it is parsed and persisted, so the cache always holds plain JSON.
func NewLoader(store blob.Store, fetcher fetch.Fetcher, url string, logger *zap.Logger) *dataset.Loader[*Prices] {
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parse := func(data []byte) (*Prices, error) {
		prices, err := Parse(data)
		if err != nil {
			return nil, err
		}
		if len(prices.Skipped) > 0 {
			logger.Warn("Skipped malformed vendor quotes",
				zap.String("dataset", DatasetName),
				zap.Any("skipped", prices.Skipped),
			)
		}
		return prices, nil
	}

	return &dataset.Loader[*Prices]{
		Name:    DatasetName,
		CacheID: CacheID,
		Parse:   parse,
		Fetch: func(ctx context.Context) ([]byte, error) {
			data, err := fetcher.Fetch(ctx, url)
			if err != nil {
				return nil, err
			}
			return Decompress(data)
		},
		Store:  store,
		Logger: logger,
	}
}
