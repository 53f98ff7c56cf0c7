package problemgen

// Config controls the behavior of the LocalGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
			&SelfCheckValidator{},
		},
	}
}

// SelfCheckValidator verifies that the canonical solution is accepted by
// CheckAnswer, so every generated problem is solvable as presented.
type SelfCheckValidator struct{}

func (v *SelfCheckValidator) Name() string { return "self-check" }

func (v *SelfCheckValidator) Validate(p *Problem) *ValidationError {
	ok, err := CheckAnswer(p.solution, p)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if !ok {
		return &ValidationError{Validator: v.Name(), Message: "canonical solution is rejected"}
	}
	return nil
}
