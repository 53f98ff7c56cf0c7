package topic

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is an exercise tier. Only 1, 2 and 3 are valid.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// Difficulties returns the valid tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Validate returns a *ConfigError unless d is 1, 2 or 3.
func (d Difficulty) Validate() error {
	switch d {
	case Easy, Medium, Hard:
		return nil
	}
	return &ConfigError{
		Field:  "difficulty",
		Value:  strconv.Itoa(int(d)),
		Reason: "must be 1, 2 or 3",
	}
}

// Label returns the display label of the tier.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("level %d", int(d))
	}
}

// ParseDifficulty parses "1".."3" or a tier label.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties() {
		if s == d.Label() {
			return d, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ConfigError{Field: "difficulty", Value: s, Reason: "must be 1, 2 or 3"}
	}
	d := Difficulty(n)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// ConfigError reports an invalid topic or difficulty at construction time.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
