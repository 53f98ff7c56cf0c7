package problemgen

import (
	"strings"
	"testing"

	"github.com/abhisek/mathdrill/internal/topic"
)

func validProblem() *Problem {
	return &Problem{
		topic:       topic.Combinatorics,
		difficulty:  topic.Medium,
		prompt:      "In how many ways can 3 people be chosen for 3 different positions from 8 candidates?",
		solution:    "336",
		hint:        "Order matters here: use permutations.",
		explanation: "P(8,3) = 8*7*6 = 336",
		answerType:  AnswerTypeInteger,
	}
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyPrompt(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.prompt = ""
	err := v.Validate(p)
	if err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
}

func TestStructural_PromptTooLong(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.prompt = strings.Repeat("a", 501)
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for long prompt")
	}
}

func TestStructural_MissingFields(t *testing.T) {
	v := &StructuralValidator{}
	cases := map[string]func(p *Problem){
		"solution":    func(p *Problem) { p.solution = "" },
		"hint":        func(p *Problem) { p.hint = "" },
		"explanation": func(p *Problem) { p.explanation = "" },
	}
	for name, mutate := range cases {
		p := validProblem()
		mutate(p)
		err := v.Validate(p)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.Contains(err.Message, name) {
			t.Errorf("%s: message %q does not name the field", name, err.Message)
		}
	}
}

func TestStructural_ExplanationTooLong(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.explanation = strings.Repeat("b", 1001)
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for long explanation")
	}
}

func TestStructural_InvalidDifficulty(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.difficulty = 7
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for difficulty 7")
	}
}

func TestStructural_UnknownAnswerType(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.answerType = "fraction"
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for unknown answer type")
	}
}

func TestStructural_HintRevealsSolution(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.solution = "6*x^2"
	p.answerType = AnswerTypeExpression
	p.hint = "The answer is 6*x^2."
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error when hint contains the solution")
	}
}

func TestStructural_ShortSolutionInHintAllowed(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.solution = "4"
	p.hint = "Move 4 to the right-hand side."
	if err := v.Validate(p); err != nil {
		t.Fatalf("expected nil for short solution, got %v", err)
	}
}
