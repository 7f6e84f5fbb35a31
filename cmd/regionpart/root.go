package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     = logrus.New()

	rootCmd = &cobra.Command{
		Use:          "regionpart",
		Short:        "Partition a planar weighted graph into vertex regions",
		Long:         "regionpart splits a vertex/edge graph into spatially local, graph-connected regions suitable for sharding across workers in a distributed shortest-path service.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
		},
	}
)

// Execute runs the regionpart root command, exiting the process with status
// 1 on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(newPartitionCmd())
	rootCmd.AddCommand(newValidateCmd())
}
