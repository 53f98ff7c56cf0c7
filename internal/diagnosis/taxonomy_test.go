package diagnosis

import (
	"testing"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/topic"
)

func TestAllMistakes_Count(t *testing.T) {
	all := AllMistakes()
	if len(all) != len(seedMistakes) {
		t.Errorf("got %d mistakes, want %d (duplicate IDs?)", len(all), len(seedMistakes))
	}
}

func TestGetMistake_Found(t *testing.T) {
	m := GetMistake("linear-swapped")
	if m == nil {
		t.Fatal("GetMistake(linear-swapped) returned nil")
	}
	if m.Topic != topic.LinearSystem {
		t.Errorf("topic = %q, want %q", m.Topic, topic.LinearSystem)
	}
	if m.Category != CategorySwappedVariables {
		t.Errorf("category = %q, want %q", m.Category, CategorySwappedVariables)
	}
}

func TestGetMistake_NotFound(t *testing.T) {
	if m := GetMistake("nonexistent"); m != nil {
		t.Errorf("GetMistake(nonexistent) = %v, want nil", m)
	}
}

func TestMistakesByTopic(t *testing.T) {
	tests := []struct {
		topic topic.Topic
		want  int
	}{
		{topic.Derivative, 2},
		{topic.LinearSystem, 3},
		{topic.Probability, 2},
		{topic.Combinatorics, 1},
		{topic.Sequence, 0},
	}
	for _, tt := range tests {
		if got := len(MistakesByTopic(tt.topic)); got != tt.want {
			t.Errorf("MistakesByTopic(%s) = %d, want %d", tt.topic, got, tt.want)
		}
	}
}

func TestMistakes_HaveLabelAndHint(t *testing.T) {
	for _, m := range AllMistakes() {
		if m.Label == "" || m.Hint == "" {
			t.Errorf("mistake %q has empty label or hint", m.ID)
		}
		if m.Category == "" {
			t.Errorf("mistake %q has no category", m.ID)
		}
	}
}

func TestFormatHint(t *testing.T) {
	tests := map[problemgen.AnswerType]string{
		problemgen.AnswerTypeDecimal:    "format-decimal",
		problemgen.AnswerTypePair:       "format-pair",
		problemgen.AnswerTypeInteger:    "format-integer",
		problemgen.AnswerTypeExpression: "format-expression",
	}
	for at, id := range tests {
		m := FormatHint(at)
		if m == nil || m.ID != id {
			t.Errorf("FormatHint(%s) = %v, want %s", at, m, id)
		}
		if m != nil && m.Category != CategoryUnparseable {
			t.Errorf("FormatHint(%s) category = %q", at, m.Category)
		}
	}
}
