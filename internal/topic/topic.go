package topic

import (
	"fmt"
	"strconv"
	"strings"
)

// Topic identifies an exercise family.
type Topic string

const (
	Derivative    Topic = "derivative"
	LinearSystem  Topic = "linear-system"
	Probability   Topic = "probability"
	Combinatorics Topic = "combinatorics"
	Sequence      Topic = "sequence"
)

// All returns all topics in menu order.
func All() []Topic {
	return []Topic{
		Derivative,
		LinearSystem,
		Probability,
		Combinatorics,
		Sequence,
	}
}

// DisplayName returns a human-readable name for a topic.
func DisplayName(t Topic) string {
	switch t {
	case Derivative:
		return "Derivatives"
	case LinearSystem:
		return "Linear Equations & Systems"
	case Probability:
		return "Probability"
	case Combinatorics:
		return "Combinatorics"
	case Sequence:
		return "Number Sequences"
	default:
		return string(t)
	}
}

// Valid reports whether t is a known topic.
func (t Topic) Valid() bool {
	for _, known := range All() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTopic resolves a topic by ID ("probability") or by its 1-based
// menu number ("3").
func ParseTopic(s string) (Topic, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		all := All()
		if n >= 1 && n <= len(all) {
			return all[n-1], nil
		}
		return "", &ConfigError{Field: "topic", Value: s, Reason: fmt.Sprintf("menu number must be between 1 and %d", len(all))}
	}
	t := Topic(s)
	if !t.Valid() {
		return "", &ConfigError{Field: "topic", Value: s, Reason: "unknown topic"}
	}
	return t, nil
}
