// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasktable/internal/task"
)

// NoDeadline is shown in place of an unset deadline.
const NoDeadline = "----------"

// FormatTask formats a task line followed by its indented description.
// Format: "{ID:>4}  [{x| }]  {PRIORITY:<6}  {DEADLINE}  {TITLE}\n        {DESCRIPTION}\n"
func FormatTask(w io.Writer, t task.Task) {
	check := " "
	if t.IsComplete {
		check = "x"
	}
	deadline := NoDeadline
	if t.HasDeadline() {
		deadline = t.Deadline.String()
	}
	fmt.Fprintf(w, "%4d  [%s]  %-6s  %s  %s\n", t.ID, check, t.Priority.OrDefault(), deadline, normalizeTitle(t.Title))
	if desc := singleLine(t.Description); strings.TrimSpace(desc) != "" {
		fmt.Fprintf(w, "        %s\n", desc)
	}
}

// FormatTasks formats every task in order.
func FormatTasks(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = singleLine(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
