package main

import (
	"fmt"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/spf13/cobra"
)

func newElementsCmd() *cobra.Command {
	var rootsOnly bool
	var children string

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List the elements of the descriptor vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			switch {
			case children != "":
				if _, ok := ejbjar.NewElement(children); !ok {
					return fmt.Errorf("elements: %w: <%s>", ejbjar.ErrUnknownElement, children)
				}
				names = ejbjar.ChildElements(children)
			case rootsOnly:
				names = ejbjar.RootElements()
			default:
				names = ejbjar.ElementNames()
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rootsOnly, "roots", false, "only list document roots")
	cmd.Flags().StringVar(&children, "children", "", "list the child elements of this element in schema order")

	return cmd
}
