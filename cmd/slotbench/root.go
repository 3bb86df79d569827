package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "slotbench",
	Short: "Benchmark interchangeable storage backends",
	Long: `slotbench compares the storage backends shipped with slotkit: the
allocator-delegating storages over the heap and arena allocators, the inline
storages, and the fallback composite. Workloads are described in a YAML file
and results are printed as a table.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
