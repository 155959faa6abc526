// Command libconfigfmt is a small CLI over package config: format a
// document canonically, dump it as JSON, or look up a single value by
// path.
//
// Grounded on cmd/sai/main.go's cobra root-command assembly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "libconfigfmt",
		Short: "Inspect and reformat libconfig-style configuration files",
	}

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
