// Package testutil provides testing utilities.
package testutil

import (
	"time"

	"cloud.google.com/go/civil"

	"tasktable/internal/form"
	"tasktable/internal/task"
)

// Toasts records notifications in the order they were delivered.
type Toasts struct {
	Events []task.Event
	IDs    []int
}

// Notify implements task.Notifier.
func (t *Toasts) Notify(e task.Event, id int) {
	t.Events = append(t.Events, e)
	t.IDs = append(t.IDs, id)
}

// Messages returns the user-facing message of every recorded event.
func (t *Toasts) Messages() []string {
	msgs := make([]string, len(t.Events))
	for i, e := range t.Events {
		msgs[i] = e.Message()
	}
	return msgs
}

// Reset forgets all recorded events.
func (t *Toasts) Reset() {
	t.Events = nil
	t.IDs = nil
}

// Date is shorthand for a civil date.
func Date(year, month, day int) civil.Date {
	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}

// Candidate returns a candidate that passes validation when title is unique.
func Candidate(title string) form.Candidate {
	return form.Candidate{
		Title:       title,
		Description: title + " details",
		Deadline:    Date(2024, 5, 1),
		Priority:    task.PriorityLow,
	}
}
