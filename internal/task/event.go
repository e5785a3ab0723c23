package task

// Event identifies a successful store mutation.
type Event int

const (
	EventAdded Event = iota + 1
	EventUpdated
	EventToggled
	EventDeleted
)

// Message returns the user-facing acknowledgment for the event.
func (e Event) Message() string {
	switch e {
	case EventAdded:
		return "Task successfully added!"
	case EventUpdated:
		return "Task successfully updated!"
	case EventToggled:
		return "Task marked as complete!"
	case EventDeleted:
		return "Task successfully deleted!"
	default:
		return ""
	}
}

func (e Event) String() string {
	switch e {
	case EventAdded:
		return "added"
	case EventUpdated:
		return "updated"
	case EventToggled:
		return "toggled"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Notifier receives an event after each successful mutation.
// Delivery is fire-and-forget.
type Notifier interface {
	Notify(e Event, id int)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(e Event, id int)

// Notify calls f(e, id).
func (f NotifierFunc) Notify(e Event, id int) { f(e, id) }
