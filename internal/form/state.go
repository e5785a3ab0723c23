package form

import (
	"cloud.google.com/go/civil"

	"tasktable/internal/task"
)

// Mode distinguishes the add form from the update form.
type Mode int

const (
	ModeAdd Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "Update Task"
	}
	return "Add Task"
}

// State is the explicit state of one task form: whether it is shown, the
// raw text of each input and the errors from the last submit.
type State struct {
	Mode Mode
	Open bool

	// Original is the task being edited in ModeUpdate.
	Original *task.Task

	Title       string
	Description string
	Deadline    string
	Priority    task.Priority

	Errors Errors
}

// NewState creates a closed, empty form.
func NewState(mode Mode) *State {
	s := &State{Mode: mode}
	s.Reset()
	return s
}

// Reset clears every input, the errors and the edit target.
func (s *State) Reset() {
	s.Original = nil
	s.Title = ""
	s.Description = ""
	s.Deadline = ""
	s.Priority = task.PriorityLow
	s.Errors = nil
}

// Show opens the form keeping whatever was typed before.
func (s *State) Show() {
	s.Open = true
}

// Load fills the form from t and makes t the edit target.
func (s *State) Load(t task.Task) {
	s.Original = &t
	s.Title = t.Title
	s.Description = t.Description
	s.Deadline = ""
	if t.HasDeadline() {
		s.Deadline = t.Deadline.String()
	}
	s.Priority = t.Priority.OrDefault()
	s.Errors = nil
}

// Close hides the form. Inputs are kept.
func (s *State) Close() {
	s.Open = false
}

// Candidate converts the raw inputs into a candidate record.
func (s *State) Candidate() Candidate {
	return Candidate{
		Title:       s.Title,
		Description: s.Description,
		Deadline:    ParseDeadline(s.Deadline),
		Priority:    s.Priority,
	}
}

// Submit validates the current inputs against existingTitles. On success
// the form is reset and closed; on failure the errors are kept on the form.
func (s *State) Submit(existingTitles []string) (task.Fields, error) {
	c := s.Candidate()
	f, err := Validate(c, existingTitles, OwnsTitle(s.Original, c.Title))
	if err != nil {
		if errs, ok := AsErrors(err); ok {
			s.Errors = errs
		}
		return task.Fields{}, err
	}
	s.Reset()
	s.Close()
	return f, nil
}

// ParseDeadline converts date-input text (YYYY-MM-DD) into a date.
// Empty or malformed text yields the zero date, which validation reports
// as a missing deadline.
func ParseDeadline(text string) civil.Date {
	d, err := civil.ParseDate(text)
	if err != nil || !d.IsValid() {
		return civil.Date{}
	}
	return d
}
