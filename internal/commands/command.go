// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tasktable/internal/config"
	"tasktable/internal/service"
)

// Command defines the interface for task commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// RegisterFlags registers command-specific flags.
	// Called before every run, so it must also reset flag state.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command against svc.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}
