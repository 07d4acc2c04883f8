package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/dhamidi/wls/internal/watch"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var watchFiles bool

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check descriptors against the WebLogic schema",
		Long: `Validate descriptors against the embedded WebLogic 9.x schema and print
every event with its line and column.

Schema events are warnings: the command only fails on them with --strict
(or validate.strict in the config file). With --watch the files are
validated again whenever they change, until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := ejbjar.NewValidator()
			out := cmd.OutOrStdout()

			total := 0
			for _, path := range args {
				n, err := validateFile(out, validator, path)
				if err != nil {
					return err
				}
				total += n
			}

			if watchFiles {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return watchAndValidate(ctx, out, validator, args)
			}

			if settings.Validate.Strict && total > 0 {
				return fmt.Errorf("validate: %d schema events", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watchFiles, "watch", false, "revalidate files when they change")
	cmd.Flags().Bool("strict", false, "fail when there are schema events")
	cmd.Flags().String("namespace", "", "namespace to read elements in")

	return cmd
}

// validateFile prints the events of one file and returns how many there
// were.
func validateFile(out io.Writer, validator *ejbjar.Validator, path string) (int, error) {
	doc, err := decodeFile(path, validator)
	if err != nil {
		return 0, fmt.Errorf("validate: %w", err)
	}
	if !ejbjar.IsRoot(doc.Root) {
		fmt.Fprintf(out, "%s: skipped, <%s> is not a descriptor root\n", path, doc.Root)
		return 0, nil
	}
	if doc.Valid() {
		fmt.Fprintf(out, "%s: ok\n", path)
		return 0, nil
	}
	for _, e := range doc.Events {
		fmt.Fprintf(out, "%s:%s\n", path, e)
	}
	return len(doc.Events), nil
}

func watchAndValidate(ctx context.Context, out io.Writer, validator *ejbjar.Validator, paths []string) error {
	changed := make(chan string)
	w, err := watch.NewFileWatcher(paths, func(path string) {
		select {
		case changed <- path:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}
	w.Start()
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changed:
			if _, err := validateFile(out, validator, path); err != nil {
				fmt.Fprintln(out, err)
			}
		}
	}
}
