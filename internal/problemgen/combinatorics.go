package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathdrill/internal/topic"
)

// maxItems bounds n so n! fits in an int64.
const maxItems = 20

// CombinatoricsParams are the sampled parameters of a counting problem.
//
//	d1: arrange N distinct items (N!)
//	d2: fill K distinct positions from N candidates (A(N, K))
//	d3: pick a team of K from N people (C(N, K))
type CombinatoricsParams struct {
	N, K int
}

func sampleCombinatorics(d topic.Difficulty, s *Sampler) CombinatoricsParams {
	switch d {
	case topic.Easy:
		return CombinatoricsParams{N: s.Between(4, 7)}
	case topic.Medium:
		return CombinatoricsParams{N: s.Between(5, 10), K: s.Between(2, 4)}
	default:
		return CombinatoricsParams{N: s.Between(10, 15), K: s.Between(3, 5)}
	}
}

func generateCombinatorics(d topic.Difficulty, s *Sampler) (*Problem, error) {
	return NewCombinatorics(d, sampleCombinatorics(d, s))
}

// NewCombinatorics builds a counting problem from explicit parameters.
func NewCombinatorics(d topic.Difficulty, p CombinatoricsParams) (*Problem, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if p.N < 1 || p.N > maxItems {
		return nil, invalidParams("n must be between 1 and %d, got %d", maxItems, p.N)
	}
	if d != topic.Easy && (p.K < 1 || p.K > p.N) {
		return nil, invalidParams("k must be between 1 and n=%d, got %d", p.N, p.K)
	}

	prob := &Problem{
		topic:      topic.Combinatorics,
		difficulty: d,
		answerType: AnswerTypeInteger,
	}

	switch d {
	case topic.Easy:
		total := Factorial(p.N)
		prob.prompt = fmt.Sprintf("In how many ways can %d different books be arranged on a shelf?", p.N)
		prob.solution = strconv.FormatInt(total, 10)
		prob.hint = fmt.Sprintf("This is the number of permutations, n! (%d!).", p.N)
		prob.explanation = fmt.Sprintf("This is the number of permutations, n! (%d!). %d! = %d.", p.N, p.N, total)

	case topic.Medium:
		total := Permutations(p.N, p.K)
		prob.prompt = fmt.Sprintf(
			"In how many ways can %d people be chosen for %d different positions from %d candidates?",
			p.K, p.K, p.N)
		prob.solution = strconv.FormatInt(total, 10)
		prob.hint = "Order matters, so count arrangements: A(n, k) = n! / (n-k)!."
		prob.explanation = fmt.Sprintf(
			"Order matters, so count arrangements: A(n, k) = n! / (n-k)!. A(%d, %d) = %d! / (%d-%d)! = %d.",
			p.N, p.K, p.N, p.N, p.K, total)

	case topic.Hard:
		total := Combinations(p.N, p.K)
		prob.prompt = fmt.Sprintf("In how many ways can a team of %d people be chosen from a group of %d?", p.K, p.N)
		prob.solution = strconv.FormatInt(total, 10)
		prob.hint = "Order does not matter, so count combinations: C(n, k) = n! / (k! * (n-k)!)."
		prob.explanation = fmt.Sprintf(
			"Order does not matter, so count combinations: C(n, k) = n! / (k! * (n-k)!). C(%d, %d) = %d! / (%d! * (%d-%d)!) = %d.",
			p.N, p.K, p.N, p.K, p.N, p.K, total)
		prob.selection = &[2]int{p.N, p.K}
	}
	return prob, nil
}

// Factorial returns n! for 0 <= n <= 20.
func Factorial(n int) int64 {
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	return result
}

// Permutations returns A(n, k) = n! / (n-k)!, or 0 when k > n.
func Permutations(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	result := int64(1)
	for i := n - k + 1; i <= n; i++ {
		result *= int64(i)
	}
	return result
}

// Combinations returns C(n, k) = n! / (k! * (n-k)!), or 0 when k > n.
func Combinations(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		result = result * int64(n-k+i) / int64(i)
	}
	return result
}
