package service

import "errors"

// ErrTaskComplete is returned when editing a completed task.
var ErrTaskComplete = errors.New("completed tasks cannot be updated")
