package problemgen

import (
	"testing"

	"github.com/abhisek/mathdrill/internal/topic"
)

func TestAnswerFormat_Integer(t *testing.T) {
	v := &AnswerFormatValidator{}
	tests := []struct {
		solution string
		wantErr  bool
	}{
		{"42", false},
		{"-7", false},
		{"0", false},
		{"007", true},
		{"4.5", true},
		{"", true},
		{"12a", true},
	}
	for _, tt := range tests {
		p := validProblem()
		p.solution = tt.solution
		err := v.Validate(p)
		if (err != nil) != tt.wantErr {
			t.Errorf("solution %q: wantErr=%v, got %v", tt.solution, tt.wantErr, err)
		}
	}
}

func pairProblem(solution string, pair *[2]int) *Problem {
	return &Problem{
		topic:       topic.LinearSystem,
		difficulty:  topic.Medium,
		prompt:      "Solve the system",
		solution:    solution,
		hint:        "eliminate",
		explanation: "elimination",
		answerType:  AnswerTypePair,
		pair:        pair,
	}
}

func TestAnswerFormat_Pair(t *testing.T) {
	v := &AnswerFormatValidator{}
	if err := v.Validate(pairProblem("3,-2", &[2]int{3, -2})); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := v.Validate(pairProblem("3, -2", &[2]int{3, -2})); err == nil {
		t.Error("expected error for spaced pair")
	}
	if err := v.Validate(pairProblem("(3,-2)", &[2]int{3, -2})); err == nil {
		t.Error("expected error for parenthesized pair")
	}
	if err := v.Validate(pairProblem("3,-2", nil)); err == nil {
		t.Error("expected error when the pair is not stored")
	}
}

func decimalProblem(solution string, precision int, prompt string) *Problem {
	return &Problem{
		topic:       topic.Probability,
		difficulty:  topic.Easy,
		prompt:      prompt,
		solution:    solution,
		hint:        "favorable over total",
		explanation: "3/10",
		answerType:  AnswerTypeDecimal,
		precision:   precision,
	}
}

func TestAnswerFormat_Decimal(t *testing.T) {
	v := &AnswerFormatValidator{}
	twoPlaces := "A box holds 10 balls, 3 are red. (round to 2 decimal places)"

	tests := []struct {
		name     string
		solution string
		prec     int
		prompt   string
		wantErr  bool
	}{
		{"valid", "0.30", 2, twoPlaces, false},
		{"one", "1.00", 2, twoPlaces, false},
		{"too few decimals", "0.3", 2, twoPlaces, true},
		{"too many decimals", "0.300", 2, twoPlaces, true},
		{"above one", "1.20", 2, twoPlaces, true},
		{"negative", "-0.30", 2, twoPlaces, true},
		{"precision mismatch", "0.30", 3, twoPlaces, true},
		{"no rounding instruction", "0.30", 2, "A box holds 10 balls.", true},
		{"no decimals", "0", 2, twoPlaces, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(decimalProblem(tt.solution, tt.prec, tt.prompt))
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAnswerFormat_Expression(t *testing.T) {
	v := &AnswerFormatValidator{}
	p := validProblem()
	p.answerType = AnswerTypeExpression
	p.solution = "6*x^2"
	if err := v.Validate(p); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	p.solution = "6 * x^2"
	if err := v.Validate(p); err == nil {
		t.Error("expected error for whitespace in expression")
	}
}
