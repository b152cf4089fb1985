package reconcile

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ReconcileAll loads every source concurrently and compares their key sets.
// The first load error aborts the reconciliation.
func ReconcileAll(ctx context.Context, sources ...Source) (*Report, error) {
	if len(sources) < 2 {
		return nil, ErrTooFewSources
	}

	names := make([]string, len(sources))
	sets := make([]map[string]struct{}, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		names[i] = src.Name()
		g.Go(func() error {
			set, err := src.Keys(gctx)
			if err != nil {
				return fmt.Errorf("failed to load %s keys: %w", src.Name(), err)
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compare(names, sets), nil
}

// Compare reconciles already loaded key sets. names and sets are parallel slices.
func Compare(names []string, sets []map[string]struct{}) *Report {
	report := &Report{
		Sources: names,
		Results: []ReconcileResult{},
		Summary: Summary{
			Sizes:   make(map[string]int, len(names)),
			Missing: make(map[string]int, len(names)),
		},
	}
	for i, name := range names {
		report.Summary.Sizes[name] = len(sets[i])
		report.Summary.Missing[name] = 0
	}

	union := buildUnion(sets)
	report.Summary.TotalKeys = len(union)

	for key := range union {
		result := buildResult(key, names, sets)
		if result.Complete() {
			report.Summary.Complete++
			continue
		}
		for _, m := range result.Missing {
			report.Summary.Missing[m]++
		}
		report.Results = append(report.Results, result)
	}

	// Sort results by key for deterministic output
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Key < report.Results[j].Key
	})

	return report
}

// buildUnion creates a union of the keys of every set.
func buildUnion(sets []map[string]struct{}) map[string]struct{} {
	size := 0
	for _, set := range sets {
		if len(set) > size {
			size = len(set)
		}
	}

	union := make(map[string]struct{}, size)
	for _, set := range sets {
		for key := range set {
			union[key] = struct{}{}
		}
	}
	return union
}

// buildResult records which sets hold key.
func buildResult(key string, names []string, sets []map[string]struct{}) ReconcileResult {
	result := ReconcileResult{Key: key, Present: []string{}, Missing: []string{}}
	for i, set := range sets {
		if _, ok := set[key]; ok {
			result.Present = append(result.Present, names[i])
		} else {
			result.Missing = append(result.Missing, names[i])
		}
	}
	return result
}
