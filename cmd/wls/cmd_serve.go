package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dhamidi/wls/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the descriptor HTTP API",
		Long: `Serve decoding, normalization, validation and checks over HTTP.

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(server.Options{
				Namespace:    settings.Namespace,
				MaxBodyBytes: settings.Server.MaxBodyBytes,
				Validate:     settings.Validate.Enabled,
			})
			return srv.ListenAndServe(ctx, settings.Server.Addr)
		},
	}

	cmd.Flags().String("addr", "", "address to listen on (default server.addr, localhost:8080)")
	cmd.Flags().String("namespace", "", "namespace to read elements in")

	return cmd
}
