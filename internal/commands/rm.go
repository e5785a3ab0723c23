package commands

import (
	"context"
	"flag"
	"io"

	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Removing an unknown id succeeds.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "rm <ref>" }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, _, err := ParseTaskRef(args)
	if err != nil {
		return reportRefError(errOut, err)
	}

	svc.Delete(ctx, id)
	return exitcode.Success
}
