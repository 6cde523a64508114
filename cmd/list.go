package cmd

import (
	"github.com/spf13/cobra"

	"ooctl/internal/catalogue"
	"ooctl/internal/render"
)

const defaultListWidth = 100

func newListCmd() *cobra.Command {
	var (
		category string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue concepts",
		Long: `Lists the concepts of the catalogue grouped by category:
relationships first, then principles, then patterns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalogue.ParseCategory(category)
			if err != nil {
				return err
			}
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			render.ConceptTable(cmd.OutOrStdout(), application.Registry().List(cat), width)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category (relationship, principle, pattern)")
	cmd.Flags().IntVar(&width, "width", defaultListWidth, "truncate summaries to fit this width, 0 disables truncation")
	return cmd
}
