package commands

import (
	"errors"
	"fmt"
	"io"

	"tasktable/internal/exitcode"
	"tasktable/internal/form"
	"tasktable/internal/service"
	"tasktable/internal/task"
)

// reportError prints err to errOut and returns the matching exit code.
// Validation errors print one line per field, sorted by field key.
func reportError(errOut io.Writer, id int, err error) int {
	if errs, ok := form.AsErrors(err); ok {
		for _, k := range errs.Keys() {
			fmt.Fprintf(errOut, "error: %s: %s\n", k, errs[k])
		}
		return exitcode.ValidationError
	}
	switch {
	case errors.Is(err, task.ErrNotFound):
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.NotFound
	case errors.Is(err, service.ErrTaskComplete):
		fmt.Fprintf(errOut, "error: %v\n", service.ErrTaskComplete)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
}

// reportRefError prints a task reference parse error.
func reportRefError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
