package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dhamidi/wls/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Rewrite descriptors in canonical form",
		Long: `Print descriptors in canonical form: elements in schema order, booleans
as true or false, every element in one namespace and no DOCTYPE.

Use -w to overwrite the files in place. Files already in canonical form
are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, filename := range args {
				doc, err := decodeFile(filename, nil)
				if err != nil {
					return fmt.Errorf("format: %w", err)
				}

				var buf bytes.Buffer
				enc := format.NewXMLEncoder(&buf)
				enc.Namespace = settings.Namespace
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("format %s: %w", filename, err)
				}

				if !fmtOverwrite {
					if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
						return err
					}
					continue
				}
				if err := rewrite(filename, buf.Bytes()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the files in place")
	cmd.Flags().String("namespace", "", "namespace to write elements in")

	return cmd
}

func rewrite(filename string, output []byte) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	current, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if bytes.Equal(current, output) {
		return nil
	}
	return os.WriteFile(filename, output, info.Mode().Perm())
}
