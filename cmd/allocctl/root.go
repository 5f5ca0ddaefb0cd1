package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet bool
)

var rootCmd = &cobra.Command{
	Use:   "allocctl",
	Short: "Exercise and inspect composite allocators",
	Long: `allocctl drives the allockit allocator combinators from the command
line. It builds composite allocators (stack buffers, arenas, predicate
gates, fallbacks) and reports how requests route through them.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the per-operation trace")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printTrace prints a per-operation line unless quiet mode is on.
func printTrace(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
