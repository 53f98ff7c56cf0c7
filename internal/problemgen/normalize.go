package problemgen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RelTolerance is the relative tolerance for decimal answers.
const RelTolerance = 1e-3

var (
	// "^1" not followed by another digit: x^1 -> x, but x^12 stays.
	unitExponentRe = regexp.MustCompile(`\^1(\D|$)`)

	// A digit run directly followed by x: 6x -> 6*x.
	coefficientVarRe = regexp.MustCompile(`(\d+)x`)

	// A digit run directly followed by a function name: 10cos -> 10*cos.
	coefficientFuncRe = regexp.MustCompile(`(\d+)(sin|cos)`)
)

// CleanAnswer removes every whitespace character from raw.
func CleanAnswer(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// NormalizeExpression canonicalizes a derivative expression so equivalent
// spellings compare equal: "6x^2", "6*x^2" and "6 x ^ 2" all become
// "6*x^2". It is not an expression parser.
func NormalizeExpression(expr string) string {
	expr = strings.ToLower(CleanAnswer(expr))
	expr = unitExponentRe.ReplaceAllString(expr, "$1")
	expr = strings.ReplaceAll(expr, "*x", "x")
	expr = coefficientVarRe.ReplaceAllString(expr, "${1}*x")
	expr = coefficientFuncRe.ReplaceAllString(expr, "${1}*${2}")
	return expr
}

// ParseDecimal reads a decimal number, accepting a comma as the decimal
// separator ("0,25").
func ParseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(CleanAnswer(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// ParseInteger reads a whole number.
func ParseInteger(s string) (int, error) {
	n, err := strconv.Atoi(CleanAnswer(s))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %w", err)
	}
	return n, nil
}

// ParsePair reads an "x,y" integer pair. Surrounding parentheses are
// tolerated: "(3,-2)".
func ParsePair(s string) (x, y int, err error) {
	s = CleanAnswer(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New("expected two numbers separated by a comma")
	}
	x, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q: %w", parts[0], err)
	}
	y, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q: %w", parts[1], err)
	}
	return x, y, nil
}

// IsClose reports whether a and b are equal within relTol of the larger
// magnitude.
func IsClose(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}
