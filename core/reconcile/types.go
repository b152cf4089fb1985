package reconcile

// ReconcileResult is the reconciliation output for a single key.
type ReconcileResult struct {
	// Key is the shared identifier.
	Key string `json:"key"`

	// Present lists the sources holding the key, in source order.
	Present []string `json:"present"`

	// Missing lists the sources lacking the key, in source order.
	Missing []string `json:"missing"`
}

// Complete reports whether every source holds the key.
func (r ReconcileResult) Complete() bool {
	return len(r.Missing) == 0
}

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	// TotalKeys is the size of the union of every source.
	TotalKeys int `json:"total_keys"`

	// Complete counts keys present in every source.
	Complete int `json:"complete"`

	// Sizes holds the number of keys per source.
	Sizes map[string]int `json:"sizes"`

	// Missing counts, per source, the union keys that source lacks.
	Missing map[string]int `json:"missing"`
}

// Report is the outcome of a reconciliation. Results only holds incomplete keys, sorted by key.
type Report struct {
	Sources []string          `json:"sources"`
	Results []ReconcileResult `json:"results"`
	Summary Summary           `json:"summary"`
}

// MissingFrom returns the keys absent from source, sorted.
func (r *Report) MissingFrom(source string) []string {
	var keys []string
	for _, res := range r.Results {
		for _, m := range res.Missing {
			if m == source {
				keys = append(keys, res.Key)
				break
			}
		}
	}
	return keys
}
