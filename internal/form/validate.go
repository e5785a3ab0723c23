// Package form validates candidate tasks and holds the state of the
// add/update forms.
package form

import (
	"errors"
	"reflect"
	"slices"
	"sort"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"tasktable/internal/task"
)

// Field keys used in Errors.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDeadline    = "deadline"
	FieldPriority    = "priority"
)

// Messages reported by Validate.
const (
	MsgTitleRequired       = "Title is required"
	MsgTitleUnique         = "Title must be unique"
	MsgDescriptionRequired = "Description is required"
	MsgDeadlineRequired    = "Deadline is required"
	MsgPriorityInvalid     = "Priority must be Low, Medium or High"
)

var requiredMessages = map[string]string{
	FieldTitle:       MsgTitleRequired,
	FieldDescription: MsgDescriptionRequired,
	FieldDeadline:    MsgDeadlineRequired,
}

// Candidate is a task record that has not been accepted yet.
// Strings are kept exactly as entered.
type Candidate struct {
	Title       string        `form:"title" validate:"required"`
	Description string        `form:"description" validate:"required"`
	Deadline    civil.Date    `form:"deadline" validate:"required"`
	Priority    task.Priority `form:"priority" validate:"omitempty,oneof=Low Medium High"`
}

// FromTask builds a candidate holding the current fields of t.
func FromTask(t task.Task) Candidate {
	return Candidate{
		Title:       t.Title,
		Description: t.Description,
		Deadline:    t.Deadline,
		Priority:    t.Priority,
	}
}

// Errors maps a field key to a single message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := e.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Keys returns the field keys in sorted order.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsErrors extracts Errors from err.
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	// An unset date is reported as nil so that "required" rejects it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(civil.Date)
		if !ok || d == (civil.Date{}) {
			return nil
		}
		return d.String()
	}, civil.Date{})
	return v
}

// Validate decides whether c may be committed.
//
// Every rule runs; all failures are reported together, one message per
// field. The title uniqueness rule runs after the title required rule and
// overwrites its message on the shared key. editingOwnTitle exempts c from
// the uniqueness rule when its title is the one already owned by the task
// being edited.
//
// An unset priority becomes Low; any other value outside Low, Medium and
// High is rejected under the priority key.
func Validate(c Candidate, existingTitles []string, editingOwnTitle bool) (task.Fields, error) {
	errs := Errors{}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return task.Fields{}, err
		}
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				if msg, ok := requiredMessages[fe.Field()]; ok {
					errs[fe.Field()] = msg
				}
			case "oneof":
				errs[FieldPriority] = MsgPriorityInvalid
			}
		}
	}

	if slices.Contains(existingTitles, c.Title) && !editingOwnTitle {
		errs[FieldTitle] = MsgTitleUnique
	}

	if len(errs) > 0 {
		return task.Fields{}, errs
	}

	return task.Fields{
		Title:       c.Title,
		Description: c.Description,
		Deadline:    c.Deadline,
		Priority:    c.Priority.OrDefault(),
	}, nil
}

// OwnsTitle reports whether title is the title already held by the task
// being edited. original is nil when adding.
func OwnsTitle(original *task.Task, title string) bool {
	return original != nil && original.Title == title
}
