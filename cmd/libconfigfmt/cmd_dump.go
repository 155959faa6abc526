package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/configjson"
	"github.com/SysMan-One/libconfig/config/parser"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump a configuration file's tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			doc := config.New()
			if err := doc.ReadFile(filename, parser.Parse); err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			output, err := configjson.Marshal(doc)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", filename, err)
			}

			_, err = os.Stdout.Write(append(output, '\n'))
			return err
		},
	}
	return cmd
}
