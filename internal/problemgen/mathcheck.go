package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MathCheckValidator independently recomputes the answer from the prompt
// text, so a rendering bug (wrong right-hand side, wrong term list) cannot
// ship a problem whose stated solution does not follow from what the learner
// sees. Prompts it cannot read pass through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem) *ValidationError {
	computed, err := computeAnswer(p.prompt)
	if err != nil {
		if errors.Is(err, errNotComputable) {
			return nil
		}
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != p.solution {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q from the prompt but solution is %q", computed, p.solution),
		}
	}
	return nil
}

var errNotComputable = errors.New("not computable")

// Regex patterns for extracting the givens from prompt text.
var (
	// "Solve the equation: 3x - 5 = 10"
	equationRe = regexp.MustCompile(`Solve the equation: (-?\d+)x ([+-]) (\d+) = (-?\d+)`)

	// One line of a system: "2x + 3y = 7"
	systemRowRe = regexp.MustCompile(`(?m)^\s*(-?\d+)x ([+-]) (\d+)y = (-?\d+)$`)

	// "Find the next term of the sequence: 3, 7, 11, 15, ..."
	sequenceRe = regexp.MustCompile(`sequence: ((?:-?\d+, )+)\.\.\.`)

	arrangeRe   = regexp.MustCompile(`(\d+) different books be arranged`)
	positionsRe = regexp.MustCompile(`(\d+) people be chosen for \d+ different positions from (\d+) candidates`)
	teamRe      = regexp.MustCompile(`team of (\d+) people be chosen from a group of (\d+)`)
)

// computeAnswer extracts the givens from the prompt and computes the answer.
func computeAnswer(prompt string) (string, error) {
	if m := equationRe.FindStringSubmatch(prompt); m != nil {
		return solveEquation(m)
	}
	if rows := systemRowRe.FindAllStringSubmatch(prompt, -1); len(rows) == 2 {
		return solveSystem(rows)
	}
	if m := sequenceRe.FindStringSubmatch(prompt); m != nil {
		return extendSequence(m[1])
	}
	if m := arrangeRe.FindStringSubmatch(prompt); m != nil {
		n, _ := strconv.Atoi(m[1])
		return strconv.FormatInt(Factorial(n), 10), nil
	}
	if m := positionsRe.FindStringSubmatch(prompt); m != nil {
		k, _ := strconv.Atoi(m[1])
		n, _ := strconv.Atoi(m[2])
		return strconv.FormatInt(Permutations(n, k), 10), nil
	}
	if m := teamRe.FindStringSubmatch(prompt); m != nil {
		k, _ := strconv.Atoi(m[1])
		n, _ := strconv.Atoi(m[2])
		return strconv.FormatInt(Combinations(n, k), 10), nil
	}
	return "", errNotComputable
}

// signed applies the sign captured next to an unsigned number.
func signed(sign, digits string) int {
	n, _ := strconv.Atoi(digits)
	if sign == "-" {
		return -n
	}
	return n
}

func solveEquation(m []string) (string, error) {
	a, _ := strconv.Atoi(m[1])
	b := signed(m[2], m[3])
	c, _ := strconv.Atoi(m[4])
	if a == 0 || (c-b)%a != 0 {
		return "", fmt.Errorf("equation %dx%+d=%d has no integer solution", a, b, c)
	}
	return strconv.Itoa((c - b) / a), nil
}

// solveSystem applies Cramer's rule to the two rows.
func solveSystem(rows [][]string) (string, error) {
	var a, b, c [2]int
	for i, row := range rows {
		a[i], _ = strconv.Atoi(row[1])
		b[i] = signed(row[2], row[3])
		c[i], _ = strconv.Atoi(row[4])
	}
	det := a[0]*b[1] - a[1]*b[0]
	if det == 0 {
		return "", fmt.Errorf("system has zero determinant")
	}
	xNum := c[0]*b[1] - c[1]*b[0]
	yNum := a[0]*c[1] - a[1]*c[0]
	if xNum%det != 0 || yNum%det != 0 {
		return "", fmt.Errorf("system has no integer solution")
	}
	return fmt.Sprintf("%d,%d", xNum/det, yNum/det), nil
}

// extendSequence predicts the next term of a sequence whose second
// differences are constant (arithmetic, quadratic) or whose ratio is a
// constant integer (geometric).
func extendSequence(list string) (string, error) {
	var terms []int
	for _, f := range strings.Split(strings.TrimSuffix(list, ", "), ", ") {
		n, err := strconv.Atoi(f)
		if err != nil {
			return "", errNotComputable
		}
		terms = append(terms, n)
	}
	if len(terms) < 3 {
		return "", errNotComputable
	}
	last := len(terms) - 1

	diffs := make([]int, last)
	for i := range diffs {
		diffs[i] = terms[i+1] - terms[i]
	}
	constantSecond := true
	for i := 2; i < len(diffs); i++ {
		if diffs[i]-diffs[i-1] != diffs[1]-diffs[0] {
			constantSecond = false
			break
		}
	}
	if constantSecond {
		nextDiff := diffs[last-1] + (diffs[last-1] - diffs[last-2])
		return strconv.Itoa(terms[last] + nextDiff), nil
	}

	if terms[0] != 0 && terms[1]%terms[0] == 0 {
		ratio := terms[1] / terms[0]
		geometric := true
		for i := 1; i < len(terms); i++ {
			if terms[i] != terms[i-1]*ratio {
				geometric = false
				break
			}
		}
		if geometric {
			return strconv.Itoa(terms[last] * ratio), nil
		}
	}
	return "", errNotComputable
}
