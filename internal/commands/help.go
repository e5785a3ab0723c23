package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpHeader)
	fmt.Fprint(out, DefaultRegistry.Summary())
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpHeader = `Usage:
  tasktable [global flags]                 Open the interactive task table
  tasktable [global flags] tui             Open the interactive task table
  tasktable [global flags] shell           Read commands from standard input
  tasktable [global flags] <command>       Run one command

Commands:
`

const helpFooter = `  quit                 Leave the shell

Flags:
  add, update:  --desc/-d <text>  --deadline <YYYY-MM-DD>  --priority/-p Low|Medium|High
  update:       --title/-t <text> (or a title after <ref>)
  list:         --open

A <ref> is a task id as shown by list.
In the shell, quote arguments that contain # (an unquoted # starts a comment).

Global flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
