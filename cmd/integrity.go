package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"feather/feature/integrity"
	"feather/feature/integrity/checks"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Run all integrity checks",
	Long:  `Checks dataset cache presence, snapshot health and, when a database is configured, the price history schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runIntegrityChecks(cmd.Context(), jsonOutput, true, true)
	},
}

// datasetsCmd checks only the dataset cache
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Check that every dataset has a cached payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// snapshotCmd checks only the price snapshot
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Check the health of the price snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(datasetsCmd, snapshotCmd)

	integrityCmd.Flags().Bool("json", false, "Output the full report as JSON")
	datasetsCmd.Flags().BoolVar(&fixFlag, "fix", false, "Refresh datasets whose cache is missing")
}

func runIntegrityChecks(ctx context.Context, jsonOutput, runDatasets, runSnapshot bool) error {
	startTime := time.Now()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.store, rt.pricing, rt.db, logg)

	if jsonOutput {
		data, err := json.MarshalIndent(svc.RunAll(ctx), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	if runDatasets {
		missing, err := svc.CheckDatasets(ctx)
		if err != nil {
			return fmt.Errorf("dataset check failed: %w", err)
		}
		fmt.Println("\n=== Dataset Cache ===")
		if len(missing) == 0 {
			fmt.Println("All dataset caches present")
		} else {
			for _, id := range missing {
				fmt.Printf("Missing: %s\n", id)
			}
			if fixFlag {
				if err := svc.FixDatasets(ctx, missing); err != nil {
					return fmt.Errorf("failed to refresh datasets: %w", err)
				}
				fmt.Printf("Refreshed %d dataset(s)\n", len(missing))
			}
		}
	}

	if runSnapshot {
		report, err := svc.CheckSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("snapshot check failed: %w", err)
		}

		statusColor := "\033[32m" // Green
		if report.Status != "ok" {
			statusColor = "\033[33m" // Yellow
		}
		resetColor := "\033[0m"

		fmt.Println("\n=== Snapshot Metrics ===")
		fmt.Printf("Status: %s%s%s\n", statusColor, report.Status, resetColor)
		fmt.Printf("Total Items: %d\n", report.Total)
		fmt.Printf("Resolved: %d\n", report.Resolved)
		fmt.Printf("Estimated: %d\n", report.Estimated)
		fmt.Printf("Unresolved Ratio: %.2f\n", report.Unresolved)
		fmt.Printf("Collisions: %d\n", len(report.Collisions))
		for _, c := range report.Collisions {
			fmt.Printf("- %s (kept %s, dropped %s)\n", c.Key, c.KeptID, c.DroppedID)
		}
		for _, name := range report.Failed {
			fmt.Printf("Failed Dataset: %s\n", name)
		}
		for vendor, n := range report.Skipped {
			fmt.Printf("Skipped %s Quotes: %d\n", vendor, n)
		}

		if coverage, err := svc.CheckCoverage(ctx); err != nil {
			logg.Warn("Coverage check failed", zap.Error(err))
		} else {
			fmt.Printf("Catalog Items Without Quotes: %d\n", coverage.Vendor.Summary.Missing[checks.SourceVendor])
			fmt.Printf("Quotes Without Catalog Items: %d\n", coverage.Vendor.Summary.Missing[checks.SourceCatalog])
			if coverage.History != nil {
				fmt.Printf("Estimated Items Never Recorded: %d\n", coverage.History.Summary.Missing[checks.SourceHistory])
			}
		}

		if svc.HasDatabase() {
			if schema, err := svc.CheckSchema(); err != nil {
				logg.Warn("Schema check failed", zap.Error(err))
			} else {
				fmt.Printf("History Schema Matched: %v\n", schema.Matched)
				for _, col := range schema.MissingColumns {
					fmt.Printf("- missing column %s\n", col)
				}
			}
		}
	}

	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
	logg.Info("Integrity check completed", zap.Duration("execution_time", time.Since(startTime)))
	return nil
}
