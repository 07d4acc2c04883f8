package main

import (
	"github.com/dhamidi/wls/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewLSPServer(version, settings.Namespace)
			return server.RunStdio()
		},
	}

	cmd.Flags().String("namespace", "", "namespace to read elements in")

	return cmd
}
