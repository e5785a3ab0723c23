package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task id in args[0].
// A reference is the decimal task id; ids start at 1.
// Returns the id and the remaining arguments.
func ParseTaskRef(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrTaskRefRequired
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, nil, fmt.Errorf("invalid task reference: %s", ref)
	}
	id, err := strconv.Atoi(ref)
	if err != nil || id < 1 {
		return 0, nil, fmt.Errorf("invalid task reference: %s", ref)
	}
	return id, args[1:], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
