package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ooctl/internal/cli"
)

const defaultEndpoint = "http://localhost:8090/sse"

func newCallCmd() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "call <tool> [key=value...]",
		Short: "Call a tool on a running 'ooctl serve --sse-addr' instance",
		Long: `Connects to an ooctl MCP server over SSE, calls one tool and prints
its text result. Without arguments it lists the available tools.

Examples:
  ooctl call
  ooctl call concept_list category=pattern
  ooctl call concept_run name=observer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Dial(cmd.Context(), endpoint)
			if err != nil {
				return fmt.Errorf("failed to connect to %s: %w", endpoint, err)
			}
			defer client.Close()

			if len(args) == 0 {
				tools, err := client.ListTools(cmd.Context())
				if err != nil {
					return err
				}
				for _, tool := range tools {
					fmt.Fprintln(cmd.OutOrStdout(), tool)
				}
				return nil
			}

			toolArgs, err := cli.ParseArgs(args[1:])
			if err != nil {
				return err
			}
			out, err := client.CallToolSimple(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", defaultEndpoint, "SSE endpoint of the server")
	return cmd
}
