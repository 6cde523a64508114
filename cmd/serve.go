package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var sseAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalogue to MCP clients",
		Long: `Starts an MCP server exposing the catalogue as tools:

  concept_list   list concepts, optionally by category
  concept_show   notes and samples of one concept as markdown
  concept_run    run the demo of one concept

By default the server speaks over stdin/stdout. With --sse-addr it listens
for HTTP clients on http://<addr>/sse instead, which 'ooctl call' can use.
Logs are written to stderr so they never interleave with the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			if sseAddr == "" {
				return application.RunServer(rootCmd.Version)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return application.RunSSEServer(ctx, sseAddr, rootCmd.Version)
		},
	}

	cmd.Flags().StringVar(&sseAddr, "sse-addr", "", "serve over SSE on this address (e.g. localhost:8090) instead of stdio")
	return cmd
}
