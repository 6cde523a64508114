package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ooctl/internal/app"
)

// Global flags shared by every subcommand.
var (
	rootConfigPath string
	rootLogLevel   string
	rootDebug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ooctl",
	Short: "Browse and run a catalogue of object-oriented design concepts",
	Long: `ooctl is a catalogue of object-oriented design concepts written in Go:
class relationships, the SOLID principles and a set of classic design
patterns. Every concept comes with notes, before/after samples and a small
runnable demo.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown concepts, failed demos)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ooctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication builds the application from the global flags, wiring
// command output to cmd's writers.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(rootConfigPath, rootLogLevel, rootDebug)
	cfg.Stdout = cmd.OutOrStdout()
	cfg.Stderr = cmd.ErrOrStderr()
	return app.NewApplication(cfg)
}

func init() {
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCallCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file layered over ~/.config/ooctl/config.yaml and ./.ooctl/config.yaml")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
}
