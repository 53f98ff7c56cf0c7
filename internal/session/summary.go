package session

import "time"

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalServed    int
	TotalSolved    int
	SolvedFirstTry int
	TotalFailed    int
	Accuracy       float64
	TopicResults   []TopicResult
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	results := make([]TopicResult, 0, len(state.order))
	for _, t := range state.order {
		if tr, ok := state.PerTopicResults[t]; ok {
			results = append(results, *tr)
		}
	}

	var accuracy float64
	if state.TotalServed > 0 {
		accuracy = float64(state.TotalSolved) / float64(state.TotalServed)
	}

	elapsed := state.Elapsed
	if elapsed == 0 && !state.StartTime.IsZero() {
		elapsed = time.Since(state.StartTime)
	}

	return &SessionSummary{
		Duration:       elapsed,
		TotalServed:    state.TotalServed,
		TotalSolved:    state.TotalSolved,
		SolvedFirstTry: state.SolvedFirstTry,
		TotalFailed:    state.TotalFailed,
		Accuracy:       accuracy,
		TopicResults:   results,
	}
}
