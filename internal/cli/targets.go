package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uilift"
)

// NewTargetsCommand creates the targets command listing supported emitters.
func NewTargetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "targets",
		Short:         "List the supported apply targets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			targets := uilift.Targets()
			return formatter.Success(targets, func(w io.Writer) {
				for _, target := range targets {
					fmt.Fprintln(w, target)
				}
			})
		},
	}
}
