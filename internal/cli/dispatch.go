// Package cli parses command lines and dispatches them to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasktable/internal/commands"
	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/service"
)

// Dispatcher handles command-line parsing and dispatch.
// All commands it runs share one service.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
}

// NewDispatcher creates a new dispatcher for the given registry, service and config.
func NewDispatcher(registry *commands.Registry, svc service.Service, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
	}
}

// Run dispatches one command line (without the program name).
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	return cmd.Run(ctx, d.cfg, d.svc, fs.Args(), out, errOut)
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		return "flag needs an argument: " + strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
	}
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
	}
	if i := strings.Index(errStr, ": "); i >= 0 && strings.HasPrefix(errStr, "invalid value") {
		// invalid value "x" for flag -priority: invalid priority: x
		return errStr[i+2:]
	}
	return errStr
}
