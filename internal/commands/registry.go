package commands

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps command names and aliases to commands.
// Commands are registered from init functions before any dispatch.
type Registry struct {
	cmds  map[string]Command
	names []string // primary names, sorted
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already taken.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, k := range keys {
		if _, exists := r.cmds[k]; exists {
			return fmt.Errorf("command already registered: %s", k)
		}
	}
	for _, k := range keys {
		r.cmds[k] = c
	}
	i, _ := slices.BinarySearch(r.names, c.Name())
	r.names = slices.Insert(r.names, i, c.Name())
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	result := make([]Command, len(r.names))
	for i, name := range r.names {
		result[i] = r.cmds[name]
	}
	return result
}

// Summary returns one "name  synopsis" line per command.
func (r *Registry) Summary() string {
	var sb strings.Builder
	for _, c := range r.All() {
		name := c.Name()
		if aliases := c.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(&sb, "  %-20s %s\n", name, c.Synopsis())
	}
	return sb.String()
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
