package app

import (
	"context"
	"errors"
	"fmt"

	"ooctl/internal/catalogue"
	"ooctl/internal/mcpserver"
	"ooctl/internal/tui"
	"ooctl/pkg/logging"
)

// RunDemos runs the named demos in order, each under a header. Every demo
// runs even when an earlier one fails; the failures are joined.
func (a *Application) RunDemos(ctx context.Context, names []string) error {
	env := a.env()
	var errs []error
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(env.Out)
		}
		fmt.Fprintf(env.Out, "== %s ==\n", name)
		if err := a.registry.Run(ctx, name, env); err != nil {
			a.logger.Error("CLI", err, "Demo %s failed", name)
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
		}
	}
	return errors.Join(errs...)
}

// RunBrowser starts the interactive concept browser. Logs are routed to
// the browser's status bar while it owns the terminal.
func (a *Application) RunBrowser(ctx context.Context) error {
	level, err := resolveLogLevel(a.config)
	if err != nil {
		return err
	}
	tuiLogger, logChan := logging.NewForTUI(level)
	defer tuiLogger.Close()

	registry, err := catalogue.Default(tuiLogger)
	if err != nil {
		return fmt.Errorf("failed to build concept catalogue: %w", err)
	}

	p := tui.NewProgram(ctx, tui.Options{
		Registry: registry,
		Config:   a.Settings(),
		Logger:   tuiLogger,
		Logs:     logChan,
	})
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	a.logger.Debug("TUI-Lifecycle", "TUI exited.")
	return nil
}

// RunServer serves the catalogue over MCP on stdio until the client
// disconnects.
func (a *Application) RunServer(version string) error {
	return mcpserver.New(a.registry, a.Settings(), a.logger, version).Serve()
}

// RunSSEServer serves the catalogue over MCP on addr until ctx is cancelled.
func (a *Application) RunSSEServer(ctx context.Context, addr, version string) error {
	return mcpserver.New(a.registry, a.Settings(), a.logger, version).ServeSSE(ctx, addr)
}
