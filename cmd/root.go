package cmd

import (
	"fmt"
	"os"

	"feather/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the feather command; every subcommand registers itself in its init.
var RootCmd = &cobra.Command{
	Use:   "feather",
	Short: "Consolidated item prices from several vendor feeds",
	Long: `Feather loads an item catalog and several vendor price feeds, consolidates them into one
estimate per item and renders it in any supported display currency.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure. Errors are printed through a console
// logger since the configured one may not exist yet.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	if l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"}); logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
