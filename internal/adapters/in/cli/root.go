// Package cli is the interaction shell of orderdesk: a cobra command tree over the
// coordination use cases, usable one command at a time or through the interactive
// shell.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"orderdesk/internal/core/application/usecases"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Deps carries everything the command tree needs from the composition root.
type Deps struct {
	Handlers usecases.Handlers
	Logger   *slog.Logger

	// Serve runs the HTTP server until ctx is cancelled. Nil disables the serve command.
	Serve func(ctx context.Context) error
}

type app struct {
	deps       Deps
	log        *slog.Logger
	jsonOutput bool
}

func newRootCmd(deps Deps) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	a := &app{deps: deps, log: deps.Logger}

	cmd := &cobra.Command{
		Use:           "orderdesk",
		Short:         "Manage orders and their shipments",
		Long:          "orderdesk keeps orders and shipments consistent: every delete is a soft delete and a shipment can be removed from its order safely.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = deps.Logger.With("correlation_id", uuid.NewString())
			a.log.DebugContext(cmd.Context(), "command started", "command", cmd.CommandPath())
		},
	}
	cmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print results as JSON")

	cmd.AddCommand(newOrderCmd(a))
	cmd.AddCommand(newShipmentCmd(a))
	cmd.AddCommand(newShellCmd(deps))
	if deps.Serve != nil {
		cmd.AddCommand(newServeCmd(deps))
	}
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest(deps Deps) *cobra.Command {
	return newRootCmd(deps)
}

// Execute runs the command tree with args and prints a failure with its category to
// stderr.
func Execute(ctx context.Context, deps Deps, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, FormatError(err))
	}
	return err
}

func newServeCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.Serve(cmd.Context())
		},
	}
}
