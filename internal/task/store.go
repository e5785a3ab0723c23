package task

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// IDPolicy selects how new task ids are assigned.
type IDPolicy int

const (
	// IDPolicyReuse assigns max(existing ids)+1, or 1 for an empty store.
	// Deleting the highest id and adding again reuses that id.
	IDPolicyReuse IDPolicy = iota

	// IDPolicyMonotonic assigns ids from a counter that never goes back.
	IDPolicyMonotonic
)

// ParseIDPolicy parses "reuse" or "monotonic".
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch s {
	case "", "reuse":
		return IDPolicyReuse, nil
	case "monotonic":
		return IDPolicyMonotonic, nil
	default:
		return 0, fmt.Errorf("invalid id policy: %s", s)
	}
}

func (p IDPolicy) String() string {
	if p == IDPolicyMonotonic {
		return "monotonic"
	}
	return "reuse"
}

// Option configures a Store.
type Option func(*Store)

// WithIDPolicy sets the id assignment policy.
func WithIDPolicy(p IDPolicy) Option {
	return func(s *Store) { s.policy = p }
}

// WithNotifier sets the notifier told about every successful mutation.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// Store holds tasks in insertion order.
//
// Store is not safe for concurrent use. It is meant to be owned by a single
// control flow (one session, one event loop).
type Store struct {
	tasks    []Task
	policy   IDPolicy
	lastID   int
	notifier Notifier
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new task built from f and returns it.
// f is assumed to have passed validation already.
func (s *Store) Add(f Fields) Task {
	f.Priority = f.Priority.OrDefault()
	t := Task{
		ID:         s.nextID(),
		Fields:     f,
		IsComplete: false,
	}
	s.tasks = append(s.tasks, t)
	s.notify(EventAdded, t.ID)
	return t
}

// Update replaces the fields of the task with the given id.
// The id, completion state and position are kept.
func (s *Store) Update(id int, f Fields) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	f.Priority = f.Priority.OrDefault()
	s.tasks[i].Fields = f
	s.notify(EventUpdated, id)
	return s.tasks[i], nil
}

// ToggleComplete flips the completion state of the task with the given id.
func (s *Store) ToggleComplete(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("toggle %d: %w", id, ErrNotFound)
	}
	s.tasks[i].IsComplete = !s.tasks[i].IsComplete
	s.notify(EventToggled, id)
	return s.tasks[i], nil
}

// Delete removes the task with the given id. Deleting an unknown id is a
// no-op, and the deletion is still acknowledged.
func (s *Store) Delete(id int) {
	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool { return t.ID == id })
	s.notify(EventDeleted, id)
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return s.tasks[i], nil
}

// List returns a snapshot of all tasks in insertion order.
func (s *Store) List() []Task {
	return slices.Clone(s.tasks)
}

// Titles returns the titles of all tasks in insertion order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		titles[i] = t.Title
	}
	return titles
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) nextID() int {
	maxID := 0
	for _, t := range s.tasks {
		maxID = max(maxID, t.ID)
	}
	if s.policy == IDPolicyMonotonic {
		maxID = max(maxID, s.lastID)
	}
	s.lastID = maxID + 1
	return s.lastID
}

func (s *Store) notify(e Event, id int) {
	if s.notifier != nil {
		s.notifier.Notify(e, id)
	}
}
