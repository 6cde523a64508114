package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"ooctl/internal/render"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func newShowCmd() *cobra.Command {
	var (
		copyNotes bool
		notesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "show <concept>",
		Short: "Show the notes and samples of a concept",
		Long: `Shows the notes of a concept followed by a before/after pair of code
samples, when the concept has them. With --copy the same content is copied
to the clipboard as markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			c, err := application.Registry().Get(args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.ConceptDetail(c, !notesOnly))

			if copyNotes {
				if err := copyToClipboard(render.Markdown(c)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				application.Logger().Info("CLI", "Copied %s to clipboard", c.Name)
			}
			return nil
		},
		ValidArgsFunction: completeConceptNames,
	}

	cmd.Flags().BoolVar(&copyNotes, "copy", false, "also copy the concept to the clipboard as markdown")
	cmd.Flags().BoolVar(&notesOnly, "notes-only", false, "omit the code samples")
	return cmd
}

func completeConceptNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	application, err := newApplication(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return application.Registry().Names(), cobra.ShellCompDirectiveNoFileComp
}
