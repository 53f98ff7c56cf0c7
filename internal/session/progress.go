package session

import "github.com/abhisek/mathdrill/internal/topic"

// TopicResult tracks per-topic performance within a single session.
type TopicResult struct {
	Topic          topic.Topic
	Served         int
	SolvedFirstTry int
	Solved         int
	Failed         int
}

// Record adds a finished attempt to the tally.
func (tr *TopicResult) Record(a *Attempt) {
	switch {
	case a.Solved():
		tr.Solved++
		if a.Tries() == 1 {
			tr.SolvedFirstTry++
		}
	case a.Closed():
		tr.Failed++
	}
}

// Accuracy is the share of served exercises that were eventually solved.
func (tr *TopicResult) Accuracy() float64 {
	if tr.Served == 0 {
		return 0
	}
	return float64(tr.Solved) / float64(tr.Served)
}
