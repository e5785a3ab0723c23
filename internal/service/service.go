// Package service defines the interface commands use to operate on tasks.
package service

import (
	"context"

	"tasktable/internal/form"
	"tasktable/internal/task"
)

// Service defines the task operations available to commands and views.
// Commands never touch the store directly.
type Service interface {
	// Tasks returns all tasks in insertion order.
	Tasks(ctx context.Context) []task.Task

	// Task returns the task with the given id.
	// Returns an error wrapping task.ErrNotFound if absent.
	Task(ctx context.Context, id int) (task.Task, error)

	// Add validates c and appends a new task.
	// Returns form.Errors if validation fails.
	Add(ctx context.Context, c form.Candidate) (task.Task, error)

	// Update validates c and replaces the fields of the task with the given id.
	// Returns form.Errors if validation fails, task.ErrNotFound if absent,
	// and ErrTaskComplete for completed tasks.
	Update(ctx context.Context, id int, c form.Candidate) (task.Task, error)

	// Toggle flips the completion state of a task.
	Toggle(ctx context.Context, id int) (task.Task, error)

	// Delete removes a task. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int)
}
