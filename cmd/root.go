// Package cmd holds the jobdash command line.
package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "jobdash",
		Short:         "Job monitoring dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default ./config.yaml)")

	rootCmd.AddCommand(
		NewServeCommand(&configFile),
		NewJobsCommand(&configFile),
	)

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// seedOrNow turns the zero seed into a time based one
func seedOrNow(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}
