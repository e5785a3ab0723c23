package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/form"
	"tasktable/internal/service"
	"tasktable/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	desc     string
	deadline string
	priority priorityFlag
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "add [--desc <text>] [--deadline <YYYY-MM-DD>] [--priority Low|Medium|High] <title...>"
}

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.desc, "d", "", "")
	fs.StringVar(&c.deadline, "deadline", "", "")
	c.priority = priorityFlag{p: task.PriorityLow}
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	candidate := form.Candidate{
		Title:       strings.Join(args, " "),
		Description: c.desc,
		Deadline:    parseDeadline(errOut, c.deadline),
		Priority:    c.priority.p,
	}

	if _, err := svc.Add(ctx, candidate); err != nil {
		return reportError(errOut, 0, err)
	}
	return exitcode.Success
}
