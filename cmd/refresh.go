package cmd

import (
	"fmt"
	"os"
	"time"

	"feather/feature/history"
	"feather/feature/pricing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type refreshSummary struct {
	pricing.Report
	Stats    pricing.Stats `json:"stats"`
	Recorded int           `json:"recorded"`
}

// refreshCmd reloads every dataset from its remote source
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Download every dataset and rebuild the price index",
	Long: `Fetches the catalog, vendor prices, exchange rates and doppler phases from their remote
sources, rewrites the local cache and optionally records the resulting prices in the history database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, _ := cmd.Flags().GetBool("record")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		startTime := time.Now()

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		snap, err := rt.pricing.Refresh(cmd.Context())
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		report := snap.Report()
		stats := snap.Stats()

		recorded := 0
		if record {
			if rt.db == nil {
				return history.ErrNoDatabase
			}
			store := history.NewStore(rt.db)
			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("failed to migrate history table: %w", err)
			}
			if recorded, err = store.Record(cmd.Context(), snap, time.Now().UTC()); err != nil {
				return fmt.Errorf("failed to record price points: %w", err)
			}
		}

		if jsonOutput {
			data, err := json.MarshalIndent(refreshSummary{Report: report, Stats: stats, Recorded: recorded}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}

		fmt.Println("\n=== Refresh Summary ===")
		for _, ds := range report.Datasets {
			status := "ok"
			if ds.Failed() {
				status = "FAILED: " + ds.Error
			}
			fmt.Printf("%-10s %-8s %6d entries  %s\n", ds.Name, ds.Origin, ds.Entries, status)
		}
		fmt.Printf("Index Entries: %d\n", stats.Total)
		fmt.Printf("Resolved: %d\n", stats.Resolved)
		fmt.Printf("Estimated: %d\n", stats.Estimated)
		fmt.Printf("Collisions: %d\n", stats.Collisions)
		if record {
			fmt.Printf("Recorded Points: %d\n", recorded)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		logg.Info("Refresh completed",
			zap.Int("total", stats.Total),
			zap.Int("resolved", stats.Resolved),
			zap.Bool("degraded", report.Degraded()),
			zap.Int("recorded", recorded),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().Bool("record", false, "Record the refreshed prices in the history database")
	refreshCmd.Flags().Bool("json", false, "Output the refresh report as JSON")
}
