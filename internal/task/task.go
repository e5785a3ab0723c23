// Package task defines the task record and the in-memory store that owns it.
package task

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority parses a priority name (case-insensitive).
// An empty string yields PriorityLow.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityLow, nil
	}
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}

// OrDefault returns p, or PriorityLow if p is unset.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityLow
	}
	return p
}

// Fields holds every user-editable attribute of a task.
type Fields struct {
	Title       string
	Description string
	Deadline    civil.Date
	Priority    Priority
}

// Task represents a single task item.
type Task struct {
	ID int
	Fields
	IsComplete bool
}

// HasDeadline reports whether a deadline has been set.
func (f Fields) HasDeadline() bool {
	return f.Deadline != civil.Date{}
}
