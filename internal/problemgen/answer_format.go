package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	pairPattern    = regexp.MustCompile(`^-?\d+,-?\d+$`)
	decimalPattern = regexp.MustCompile(`^\d+\.(\d+)$`)
	roundingRe     = regexp.MustCompile(`round to (\d+) decimal places`)
)

// AnswerFormatValidator checks that the canonical solution is written in the
// canonical form of its answer type, and that decimal solutions carry
// exactly the precision the prompt asks for.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(p *Problem) *ValidationError {
	switch p.answerType {
	case AnswerTypeInteger:
		if err := validateInteger(p.solution); err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("invalid integer solution %q: %s", p.solution, err),
			}
		}
	case AnswerTypePair:
		if !pairPattern.MatchString(p.solution) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("solution %q does not match pattern x,y", p.solution),
			}
		}
		if _, _, ok := p.SolutionPair(); !ok {
			return &ValidationError{Validator: v.Name(), Message: "pair solution without stored pair"}
		}
	case AnswerTypeDecimal:
		if err := validateProbability(p); err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("invalid decimal solution %q: %s", p.solution, err),
			}
		}
	case AnswerTypeExpression:
		if strings.ContainsAny(p.solution, " \t\n") {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("expression solution %q contains whitespace", p.solution),
			}
		}
	}
	return nil
}

// validateInteger checks that s is a valid integer string with no leading zeros.
func validateInteger(s string) error {
	if !integerPattern.MatchString(s) {
		return fmt.Errorf("not a valid integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("out of range")
	}
	if strconv.Itoa(n) != s {
		return fmt.Errorf("has leading zeros")
	}
	return nil
}

// validateProbability checks that the solution lies in [0, 1] and has as many
// decimals as the prompt's rounding instruction.
func validateProbability(p *Problem) error {
	m := decimalPattern.FindStringSubmatch(p.solution)
	if m == nil {
		return fmt.Errorf("not a fixed-point decimal")
	}
	v, err := strconv.ParseFloat(p.solution, 64)
	if err != nil || v < 0 || v > 1 {
		return fmt.Errorf("probability outside [0, 1]")
	}

	stated := roundingRe.FindStringSubmatch(p.prompt)
	if stated == nil {
		return fmt.Errorf("prompt states no rounding precision")
	}
	want, _ := strconv.Atoi(stated[1])
	if len(m[1]) != want || p.precision != want {
		return fmt.Errorf("has %d decimals, prompt asks for %d", len(m[1]), want)
	}
	return nil
}
