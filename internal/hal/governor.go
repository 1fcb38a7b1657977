package hal

import (
	"errors"
	"fmt"
)

var ErrNoGovernor = errors.New("can't obtain scaling governor")

// DefaultInteractiveGovernors are the governors that honour perflock hints.
var DefaultInteractiveGovernors = []string{"interactive", "interactivex"}

// queryGovernor probes cores in order and returns the first governor found.
func queryGovernor(r GovernorReader, cores []int) (string, error) {
	var last error
	for _, cpu := range cores {
		governor, err := r.Governor(cpu)
		if err == nil {
			return governor, nil
		}
		last = err
	}
	if last == nil {
		return "", ErrNoGovernor
	}
	return "", fmt.Errorf("%w: %v", ErrNoGovernor, last)
}

func interactiveSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// IsInteractiveGovernor reports whether name is one of the default
// interactive-style governors.
func IsInteractiveGovernor(name string) bool {
	for _, governor := range DefaultInteractiveGovernors {
		if governor == name {
			return true
		}
	}
	return false
}
