package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/parser"
	cpath "github.com/SysMan-One/libconfig/config/path"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted/bracketed path (e.g. a.b[3].c)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, expr := args[0], args[1]

			doc := config.New()
			if err := doc.ReadFile(filename, parser.Parse); err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			s := cpath.Resolve(doc.Root(), expr)
			if s == nil {
				return fmt.Errorf("path %q not found in %s", expr, filename)
			}

			fmt.Println(scalarString(s))
			return nil
		},
	}
	return cmd
}

func scalarString(s *config.Setting) string {
	switch s.Kind() {
	case config.KindInt:
		v, _ := s.Int()
		return fmt.Sprintf("%d", v)
	case config.KindInt64:
		v, _ := s.Int64()
		return fmt.Sprintf("%d", v)
	case config.KindFloat:
		v, _ := s.Float()
		return fmt.Sprintf("%g", v)
	case config.KindBool:
		v, _ := s.Bool()
		return fmt.Sprintf("%t", v)
	case config.KindString:
		v, _ := s.String()
		return v
	default:
		return fmt.Sprintf("<%s>", s.Kind())
	}
}
