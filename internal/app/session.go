// Package app owns the task store and form state of one interactive
// session. Every operation runs to completion on the caller's goroutine;
// a Session must be driven by a single control flow.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"tasktable/internal/form"
	"tasktable/internal/logging"
	"tasktable/internal/service"
	"tasktable/internal/task"
)

// ErrNotEditing is returned when submitting the update form while no task
// is being edited.
var ErrNotEditing = errors.New("no task is being edited")

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithToast sets the collaborator shown success acknowledgments.
func WithToast(n task.Notifier) Option {
	return func(s *Session) { s.toast = n }
}

// WithIDPolicy sets the store's id assignment policy.
func WithIDPolicy(p task.IDPolicy) Option {
	return func(s *Session) { s.policy = p }
}

// Session is the single owner of a task store and its forms.
type Session struct {
	store    *task.Store
	addForm  *form.State
	editForm *form.State
	editing  int // id of the task in the update form, 0 if none

	policy task.IDPolicy
	logger *log.Logger
	toast  task.Notifier
}

var _ service.Service = (*Session)(nil)

// New creates a session with an empty store.
func New(opts ...Option) *Session {
	s := &Session{
		addForm:  form.NewState(form.ModeAdd),
		editForm: form.NewState(form.ModeUpdate),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store = task.NewStore(
		task.WithIDPolicy(s.policy),
		task.WithNotifier(task.NotifierFunc(s.notify)),
	)
	return s
}

func (s *Session) notify(e task.Event, id int) {
	s.logger.Info(e.Message(), "event", e.String(), "id", id)
	if s.toast != nil {
		s.toast.Notify(e, id)
	}
}

// Tasks implements service.Service.
func (s *Session) Tasks(ctx context.Context) []task.Task {
	return s.store.List()
}

// Task implements service.Service.
func (s *Session) Task(ctx context.Context, id int) (task.Task, error) {
	return s.store.Get(id)
}

// Add implements service.Service.
func (s *Session) Add(ctx context.Context, c form.Candidate) (task.Task, error) {
	fields, err := form.Validate(c, s.store.Titles(), false)
	if err != nil {
		s.rejected(err, 0)
		return task.Task{}, err
	}
	return s.store.Add(fields), nil
}

// Update implements service.Service.
func (s *Session) Update(ctx context.Context, id int, c form.Candidate) (task.Task, error) {
	orig, err := s.editable(id)
	if err != nil {
		return task.Task{}, err
	}
	fields, err := form.Validate(c, s.store.Titles(), form.OwnsTitle(&orig, c.Title))
	if err != nil {
		s.rejected(err, id)
		return task.Task{}, err
	}
	return s.store.Update(id, fields)
}

// Toggle implements service.Service.
func (s *Session) Toggle(ctx context.Context, id int) (task.Task, error) {
	t, err := s.store.ToggleComplete(id)
	if err != nil {
		s.logger.Debug("toggle failed", "id", id, "err", err)
	}
	return t, err
}

// Delete implements service.Service.
func (s *Session) Delete(ctx context.Context, id int) {
	if s.editing == id {
		s.CancelEdit()
	}
	s.store.Delete(id)
}

// AddForm returns the state of the add form.
func (s *Session) AddForm() *form.State { return s.addForm }

// EditForm returns the state of the update form.
func (s *Session) EditForm() *form.State { return s.editForm }

// Editing returns the id of the task in the update form.
func (s *Session) Editing() (int, bool) {
	return s.editing, s.editing != 0
}

// OpenAdd shows the add form.
func (s *Session) OpenAdd() {
	s.addForm.Show()
}

// CancelAdd hides the add form. Typed input is kept for the next open.
func (s *Session) CancelAdd() {
	s.addForm.Close()
}

// SubmitAdd validates the add form and, on success, adds the task and
// closes the form.
func (s *Session) SubmitAdd() (task.Task, error) {
	fields, err := s.addForm.Submit(s.store.Titles())
	if err != nil {
		s.rejected(err, 0)
		return task.Task{}, err
	}
	return s.store.Add(fields), nil
}

// BeginEdit loads the task with the given id into the update form.
func (s *Session) BeginEdit(id int) error {
	t, err := s.editable(id)
	if err != nil {
		return err
	}
	s.editing = id
	s.editForm.Load(t)
	s.editForm.Show()
	return nil
}

// CancelEdit hides the update form and clears the edit target.
func (s *Session) CancelEdit() {
	s.editing = 0
	s.editForm.Close()
	s.editForm.Reset()
}

// SubmitEdit validates the update form and, on success, updates the task
// being edited and closes the form.
func (s *Session) SubmitEdit() (task.Task, error) {
	if s.editing == 0 {
		return task.Task{}, ErrNotEditing
	}
	fields, err := s.editForm.Submit(s.store.Titles())
	if err != nil {
		s.rejected(err, s.editing)
		return task.Task{}, err
	}
	updated, err := s.store.Update(s.editing, fields)
	s.CancelEdit()
	return updated, err
}

func (s *Session) editable(id int) (task.Task, error) {
	t, err := s.store.Get(id)
	if err != nil {
		return task.Task{}, err
	}
	if t.IsComplete {
		return task.Task{}, fmt.Errorf("update %d: %w", id, service.ErrTaskComplete)
	}
	return t, nil
}

func (s *Session) rejected(err error, id int) {
	if errs, ok := form.AsErrors(err); ok {
		s.logger.Debug("task rejected", "id", id, "fields", errs.Keys())
	}
}
