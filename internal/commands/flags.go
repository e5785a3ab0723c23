package commands

import (
	"fmt"
	"io"

	"cloud.google.com/go/civil"

	"tasktable/internal/form"
	"tasktable/internal/task"
)

// priorityFlag is a flag.Value restricted to the three priorities.
type priorityFlag struct {
	p   task.Priority
	set bool
}

func (f *priorityFlag) String() string {
	if f == nil {
		return ""
	}
	return string(f.p)
}

func (f *priorityFlag) Set(s string) error {
	p, err := task.ParsePriority(s)
	if err != nil {
		return err
	}
	f.p = p
	f.set = true
	return nil
}

// optString is a string flag that remembers whether it was given.
type optString struct {
	v   string
	set bool
}

func (f *optString) String() string {
	if f == nil {
		return ""
	}
	return f.v
}

func (f *optString) Set(s string) error {
	f.v = s
	f.set = true
	return nil
}

// parseDeadline converts --deadline text into a date. Text that is not a
// valid YYYY-MM-DD date is treated as no deadline, with a warning on errOut.
func parseDeadline(errOut io.Writer, text string) civil.Date {
	d := form.ParseDeadline(text)
	if text != "" && d == (civil.Date{}) {
		fmt.Fprintf(errOut, "warning: invalid deadline %q (want YYYY-MM-DD)\n", text)
	}
	return d
}
