package output

import (
	"fmt"
	"io"

	"tasktable/internal/task"
)

// Toaster prints success acknowledgments, one per line.
type Toaster struct {
	w     io.Writer
	quiet bool
}

// NewToaster creates a Toaster writing to w. A quiet toaster prints nothing.
func NewToaster(w io.Writer, quiet bool) *Toaster {
	return &Toaster{w: w, quiet: quiet}
}

// Notify implements task.Notifier.
func (t *Toaster) Notify(e task.Event, id int) {
	if t.quiet {
		return
	}
	fmt.Fprintln(t.w, e.Message())
}
