package cmd

import (
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalogue in an interactive terminal UI",
		Long: `Opens a full-screen browser over the catalogue.

Keys:
  enter   run the selected demo
  n       toggle notes and samples
  c       copy the selected concept to the clipboard
  /       filter concepts
  tab     switch between the list and the detail panel
  q       quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return application.RunBrowser(cmd.Context())
		},
	}
}
