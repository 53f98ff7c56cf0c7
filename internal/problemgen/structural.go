package problemgen

import "strings"

// StructuralValidator checks that required fields are present, within
// length limits, and that the hint does not give the answer away.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	if p.prompt == "" {
		return &ValidationError{Validator: v.Name(), Message: "prompt is empty"}
	}
	if len(p.prompt) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "prompt exceeds 500 characters"}
	}
	if p.solution == "" {
		return &ValidationError{Validator: v.Name(), Message: "solution is empty"}
	}
	if p.hint == "" {
		return &ValidationError{Validator: v.Name(), Message: "hint is empty"}
	}
	if p.explanation == "" {
		return &ValidationError{Validator: v.Name(), Message: "explanation is empty"}
	}
	if len(p.explanation) > 1000 {
		return &ValidationError{Validator: v.Name(), Message: "explanation exceeds 1000 characters"}
	}
	if err := p.difficulty.Validate(); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	switch p.answerType {
	case AnswerTypeInteger, AnswerTypeDecimal, AnswerTypePair, AnswerTypeExpression:
	default:
		return &ValidationError{Validator: v.Name(), Message: "unknown answer type " + string(p.answerType)}
	}
	// Short solutions ("6") occur inside unrelated numbers, so only check
	// solutions that are distinctive enough to be a real leak.
	if len(p.solution) > 3 && strings.Contains(p.hint, p.solution) {
		return &ValidationError{Validator: v.Name(), Message: "hint reveals the solution"}
	}
	return nil
}
