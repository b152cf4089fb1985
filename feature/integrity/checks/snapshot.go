package checks

import (
	"feather/feature/pricing"
)

// SnapshotReport summarizes the health of a published snapshot.
type SnapshotReport struct {
	Status     string              `json:"status"` // "ok", "degraded"
	Total      int                 `json:"total"`
	Resolved   int                 `json:"resolved"`
	Estimated  int                 `json:"estimated"`
	Unresolved float64             `json:"unresolved_ratio"`
	Collisions []pricing.Collision `json:"collisions"`
	Failed     []string            `json:"failed_datasets"`
	Skipped    map[string]int      `json:"skipped_vendor_quotes"`
}

// MaxUnresolvedRatio is the share of index entries without a vendor bundle above which the
// snapshot is reported as degraded.
const MaxUnresolvedRatio = 0.5

// CheckSnapshot inspects a snapshot's build report and consolidation counters.
func CheckSnapshot(snap *pricing.Snapshot) *SnapshotReport {
	stats := snap.Stats()
	report := &SnapshotReport{
		Status:     "ok",
		Total:      stats.Total,
		Resolved:   stats.Resolved,
		Estimated:  stats.Estimated,
		Collisions: snap.Collisions(),
		Failed:     []string{},
		Skipped:    map[string]int{},
	}
	if report.Collisions == nil {
		report.Collisions = []pricing.Collision{}
	}
	if snap.Prices() != nil {
		for vendor, n := range snap.Prices().Skipped {
			report.Skipped[vendor] = n
		}
	}

	for _, d := range snap.Report().Datasets {
		if d.Failed() {
			report.Failed = append(report.Failed, d.Name)
		}
	}

	if stats.Total > 0 {
		report.Unresolved = float64(stats.Total-stats.Resolved) / float64(stats.Total)
	}

	if len(report.Failed) > 0 || report.Unresolved > MaxUnresolvedRatio {
		report.Status = "degraded"
	}
	return report
}
