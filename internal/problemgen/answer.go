package problemgen

// CheckAnswer compares the learner's input against the problem's canonical
// solution. It returns (false, *UnparseableError) when the input cannot be
// read in the shape the problem expects.
//
// Normalization rules:
// - Whitespace is removed everywhere
// - A verbatim match with the canonical solution is always accepted
// - Expressions: equivalent spellings are accepted ("6x^2" matches "6*x^2")
// - Decimals: relative tolerance of 1e-3, comma or dot as separator
// - Integers: leading zeros and a plus sign are ignored
// - Pairs: "x,y", optionally in parentheses
func CheckAnswer(learnerAnswer string, p *Problem) (bool, error) {
	cleaned := CleanAnswer(learnerAnswer)
	if cleaned == p.solution {
		return true, nil
	}

	switch p.answerType {
	case AnswerTypeExpression:
		return NormalizeExpression(cleaned) == NormalizeExpression(p.solution), nil

	case AnswerTypeDecimal:
		got, err := ParseDecimal(cleaned)
		if err != nil {
			return false, &UnparseableError{AnswerType: p.answerType, Input: cleaned, Err: err}
		}
		want, err := ParseDecimal(p.solution)
		if err != nil {
			return false, err
		}
		return IsClose(got, want, RelTolerance), nil

	case AnswerTypePair:
		ux, uy, err := ParsePair(cleaned)
		if err != nil {
			return false, &UnparseableError{AnswerType: p.answerType, Input: cleaned, Err: err}
		}
		sx, sy, _ := p.SolutionPair()
		return ux == sx && uy == sy, nil

	case AnswerTypeInteger:
		got, err := ParseInteger(cleaned)
		if err != nil {
			return false, &UnparseableError{AnswerType: p.answerType, Input: cleaned, Err: err}
		}
		want, err := ParseInteger(p.solution)
		if err != nil {
			return false, err
		}
		return got == want, nil
	}
	return false, nil
}
