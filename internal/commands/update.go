package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/form"
	"tasktable/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
// Fields without a flag keep their current value.
type UpdateCmd struct {
	title    optString
	desc     optString
	deadline optString
	priority priorityFlag
}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit"} }
func (c *UpdateCmd) Synopsis() string  { return "Change a task" }
func (c *UpdateCmd) Usage() string {
	return "update [--title <text>] [--desc <text>] [--deadline <YYYY-MM-DD>] [--priority Low|Medium|High] <ref> [title...]"
}

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	c.title = optString{}
	c.desc = optString{}
	c.deadline = optString{}
	c.priority = priorityFlag{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.desc, "desc", "")
	fs.Var(&c.desc, "d", "")
	fs.Var(&c.deadline, "deadline", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, rest, err := ParseTaskRef(args)
	if err != nil {
		return reportRefError(errOut, err)
	}

	if len(rest) > 0 && c.title.set {
		fmt.Fprintln(errOut, "error: cannot use both --title and a positional title")
		return exitcode.UserError
	}

	current, err := svc.Task(ctx, id)
	if err != nil {
		return reportError(errOut, id, err)
	}

	candidate := form.FromTask(current)
	if len(rest) > 0 {
		candidate.Title = strings.Join(rest, " ")
	}
	if c.title.set {
		candidate.Title = c.title.v
	}
	if c.desc.set {
		candidate.Description = c.desc.v
	}
	if c.deadline.set {
		candidate.Deadline = parseDeadline(errOut, c.deadline.v)
	}
	if c.priority.set {
		candidate.Priority = c.priority.p
	}

	if _, err := svc.Update(ctx, id, candidate); err != nil {
		return reportError(errOut, id, err)
	}
	return exitcode.Success
}
