package problemgen

import (
	"testing"

	"github.com/abhisek/mathdrill/internal/topic"
)

func TestMathCheck_GeneratedProblemsPass(t *testing.T) {
	v := &MathCheckValidator{}
	s := NewSampler(42)
	for _, tp := range topic.All() {
		gen := strategies[tp]
		for _, d := range topic.Difficulties() {
			for i := 0; i < 50; i++ {
				p, err := gen(d, s)
				if err != nil {
					t.Fatalf("%s/%d: %v", tp, d, err)
				}
				if verr := v.Validate(p); verr != nil {
					t.Fatalf("%s/%d: %v (prompt %q)", tp, d, verr, p.prompt)
				}
			}
		}
	}
}

func TestMathCheck_TamperedSolution(t *testing.T) {
	v := &MathCheckValidator{}
	tests := []struct {
		name     string
		prompt   string
		solution string
	}{
		{"equation", "Solve the equation: 3x - 5 = 10", "4"},
		{"system", "Solve the system and enter x and y separated by a comma (for example: 5,-3):\n  2x + 1y = 4\n  1x + 3y = -3", "-2,3"},
		{"arithmetic", "Find the next term of the sequence: 3, 7, 11, 15, ...", "18"},
		{"geometric", "Find the next term of the sequence: 2, 6, 18, 54, ...", "108"},
		{"arrangement", "In how many ways can 5 different books be arranged on a shelf?", "24"},
		{"positions", "In how many ways can 3 people be chosen for 3 different positions from 10 candidates?", "120"},
		{"team", "In how many ways can a team of 3 people be chosen from a group of 10?", "720"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Problem{prompt: tt.prompt, solution: tt.solution}
			err := v.Validate(p)
			if err == nil {
				t.Fatalf("expected mismatch for solution %q", tt.solution)
			}
			if err.Validator != "math-check" {
				t.Errorf("expected validator %q, got %q", "math-check", err.Validator)
			}
		})
	}
}

func TestMathCheck_CorrectSolutions(t *testing.T) {
	v := &MathCheckValidator{}
	tests := []struct {
		prompt   string
		solution string
	}{
		{"Solve the equation: 3x - 5 = 10", "5"},
		{"Solve the equation: -4x + 2 = -10", "3"},
		{"Solve the system:\n  2x + 1y = 4\n  1x + 3y = -3", "3,-2"},
		{"Find the next term of the sequence: 3, 9, 19, 33, ...", "51"},
		{"Find the next term of the sequence: 2, 6, 18, 54, ...", "162"},
		{"In how many ways can a team of 3 people be chosen from a group of 10?", "120"},
	}
	for _, tt := range tests {
		if err := v.Validate(&Problem{prompt: tt.prompt, solution: tt.solution}); err != nil {
			t.Errorf("prompt %q: unexpected error %v", tt.prompt, err)
		}
	}
}

func TestMathCheck_NonComputablePasses(t *testing.T) {
	v := &MathCheckValidator{}
	p := &Problem{prompt: "Find the derivative of f(x) = 2*x^3", solution: "anything"}
	if err := v.Validate(p); err != nil {
		t.Errorf("expected nil for non-computable prompt, got %v", err)
	}
}

func TestMathCheck_NoIntegerSolution(t *testing.T) {
	v := &MathCheckValidator{}
	p := &Problem{prompt: "Solve the equation: 3x + 1 = 5", solution: "1"}
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for equation without an integer root")
	}
}
