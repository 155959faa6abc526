package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/format"
	"github.com/SysMan-One/libconfig/config/parser"
)

func newFmtCmd() *cobra.Command {
	var overwrite bool
	var tabWidth int

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Canonically reformat a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			doc := config.New(config.WithTabWidth(tabWidth))
			if err := doc.ReadFile(filename, parser.Parse); err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			output, err := format.Write(doc)
			if err != nil {
				return fmt.Errorf("format %s: %w", filename, err)
			}

			if overwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().IntVar(&tabWidth, "tab-width", 2, "indentation width (0-15; 0 disables indentation)")

	return cmd
}
