package main

import (
	"fmt"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report consistency problems the schema cannot catch",
		Long: `Check descriptors for duplicate ejb-names and ids, references to beans
that are not declared, mutually exclusive elements that are both set and
required values that are empty.

The command fails when any file has findings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			total := 0
			for _, path := range args {
				doc, err := decodeFile(path, nil)
				if err != nil {
					return fmt.Errorf("check: %w", err)
				}
				findings := ejbjar.Check(doc.Value)
				for _, f := range findings {
					fmt.Fprintf(out, "%s: %s\n", path, f)
				}
				total += len(findings)
			}
			if total > 0 {
				return fmt.Errorf("check: %d findings", total)
			}
			return nil
		},
	}
}
