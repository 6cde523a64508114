package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run <concept>...",
		Short: "Run concept demos",
		Long: `Runs the demo of each named concept in order and prints its trace.
Every demo runs even when an earlier one fails. Use --all to run the whole
catalogue.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("pass concept names or --all, not both")
			}

			application, err := newApplication(cmd)
			if err != nil {
				return err
			}

			names := args
			if all {
				names = application.Registry().Names()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return application.RunDemos(ctx, names)
		},
		ValidArgsFunction: completeConceptNames,
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every demo in the catalogue")
	return cmd
}
