// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad flags, bad config).
	UserError = 1

	// ValidationError indicates a task form was rejected.
	ValidationError = 2

	// NotFound indicates a task reference that matches no task.
	NotFound = 3
)
