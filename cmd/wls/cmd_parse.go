package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/dhamidi/wls/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Decode a descriptor and dump the result",
		Long: `Decode a weblogic-ejb-jar.xml or weblogic-rdbms-jar.xml file and dump
the bound model. Any element of the descriptor vocabulary may be the root,
so fragments decode too.

JSON and YAML output carries the DOCTYPE public identifiers and schema
events next to the document. XML output is the canonical form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if x, ok := encoder.(*format.XMLEncoder); ok {
				x.Namespace = settings.Namespace
			}

			var validator *ejbjar.Validator
			if settings.Validate.Enabled {
				validator = ejbjar.NewValidator()
			}
			doc, err := decodeFile(args[0], validator)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json",
		fmt.Sprintf("output format (%s)", strings.Join(format.Names, ", ")))

	return cmd
}
