package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	dryRun  bool
)

func main() {
	root := &cobra.Command{
		Use:          "scoreboard-bot",
		Short:        "Build and post the daily ticker scoreboard",
		Long:         "Scans the daily discussion thread for ticker mentions, ranks them by unique authors, folds in the optional cross-community viral radar, and posts the scoreboard as a comment.",
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().StringVar(&cfgPath, "config", "config.yaml", "path to the YAML config file")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "build and preview the scoreboard without posting")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
