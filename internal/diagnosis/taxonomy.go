package diagnosis

import (
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/topic"
)

// Mistake defines a known error pattern and the hint shown for it.
type Mistake struct {
	ID       string
	Category ErrorCategory
	Topic    topic.Topic // Empty when the pattern applies to every topic
	Label    string
	Hint     string
}

// registry is the package-level mistake registry, keyed by ID.
var registry map[string]*Mistake

// byTopic indexes topic-specific mistakes.
var byTopic map[topic.Topic][]*Mistake

func init() {
	registry = make(map[string]*Mistake, len(seedMistakes))
	byTopic = make(map[topic.Topic][]*Mistake)
	for i := range seedMistakes {
		m := &seedMistakes[i]
		registry[m.ID] = m
		if m.Topic != "" {
			byTopic[m.Topic] = append(byTopic[m.Topic], m)
		}
	}
}

// GetMistake returns a mistake by ID, or nil if not found.
func GetMistake(id string) *Mistake {
	return registry[id]
}

// MistakesByTopic returns the mistakes specific to a topic.
func MistakesByTopic(t topic.Topic) []*Mistake {
	return byTopic[t]
}

// AllMistakes returns every mistake in the taxonomy.
func AllMistakes() []*Mistake {
	result := make([]*Mistake, 0, len(registry))
	for _, m := range registry {
		result = append(result, m)
	}
	return result
}

// FormatHint returns the format-guidance mistake for an answer that could
// not be read as the given answer type.
func FormatHint(at problemgen.AnswerType) *Mistake {
	switch at {
	case problemgen.AnswerTypeDecimal:
		return registry["format-decimal"]
	case problemgen.AnswerTypePair:
		return registry["format-pair"]
	case problemgen.AnswerTypeExpression:
		return registry["format-expression"]
	default:
		return registry["format-integer"]
	}
}
