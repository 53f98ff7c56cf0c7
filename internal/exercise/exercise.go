// Package exercise is the public face of the engine: it generates one
// problem and answers questions about it.
package exercise

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathdrill/internal/diagnosis"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/topic"
)

// Kind is the verdict of an evaluation.
type Kind string

const (
	KindCorrect     Kind = "correct"
	KindMismatch    Kind = "mismatch"
	KindUnparseable Kind = "unparseable"
)

// CorrectMessage is the message returned for a correct answer.
const CorrectMessage = "Correct!"

// Result is the structured outcome of checking an answer.
type Result struct {
	Correct  bool
	Kind     Kind
	Category diagnosis.ErrorCategory // Empty when correct
	Hint     string                  // Diagnostic hint; empty when correct
	Message  string                  // Same text CheckAnswer returns
}

// Exercise wraps a single generated problem.
type Exercise struct {
	id      string
	problem *problemgen.Problem
	log     logrus.FieldLogger
}

type options struct {
	sampler *problemgen.Sampler
	config  problemgen.Config
	log     logrus.FieldLogger
}

// Option configures New.
type Option func(*options)

// WithSampler draws parameters from s instead of the process-wide source.
func WithSampler(s *problemgen.Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// WithConfig replaces the generator's validator chain.
func WithConfig(cfg problemgen.Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithLogger sets the logger used for generation and verdict records.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// New generates an exercise for the topic and difficulty. Invalid input is
// reported as a *topic.ConfigError.
func New(t topic.Topic, d topic.Difficulty, opts ...Option) (*Exercise, error) {
	o := options{config: problemgen.DefaultConfig(), log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	p, err := problemgen.New(o.sampler, o.config).Generate(t, d)
	if err != nil {
		return nil, err
	}
	return fromProblem(p, o.log), nil
}

// FromProblem wraps an already built problem.
func FromProblem(p *problemgen.Problem) *Exercise {
	return fromProblem(p, logrus.StandardLogger())
}

func fromProblem(p *problemgen.Problem, log logrus.FieldLogger) *Exercise {
	id := uuid.NewString()
	ex := &Exercise{
		id:      id,
		problem: p,
		log: log.WithFields(logrus.Fields{
			"exercise":   id,
			"topic":      p.Topic(),
			"difficulty": int(p.Difficulty()),
		}),
	}
	ex.log.Debug("exercise generated")
	return ex
}

func (e *Exercise) ID() string                   { return e.id }
func (e *Exercise) Topic() topic.Topic           { return e.problem.Topic() }
func (e *Exercise) Difficulty() topic.Difficulty { return e.problem.Difficulty() }
func (e *Exercise) Prompt() string               { return e.problem.Prompt() }
func (e *Exercise) Hint() string                 { return e.problem.Hint() }
func (e *Exercise) Explanation() string          { return e.problem.Explanation() }
func (e *Exercise) Solution() string             { return e.problem.Solution() }

// Problem returns the underlying problem.
func (e *Exercise) Problem() *problemgen.Problem { return e.problem }

// CheckAnswer reports whether raw is correct and returns the message to
// show. An incorrect message always contains the solution; callers that
// want a hint-only first miss show Hint() instead. It does not mutate the
// exercise and may be called any number of times.
func (e *Exercise) CheckAnswer(raw string) (bool, string) {
	r := e.Evaluate(raw)
	return r.Correct, r.Message
}

// Evaluate is CheckAnswer with the verdict broken out.
func (e *Exercise) Evaluate(raw string) Result {
	ok, err := problemgen.CheckAnswer(raw, e.problem)
	var perr *problemgen.UnparseableError
	unparseable := errors.As(err, &perr)
	if err != nil && !unparseable {
		// The canonical solution itself failed to parse.
		e.log.WithError(err).Error("answer check failed")
		err = nil
	}
	if ok {
		e.log.Debug("answer correct")
		return Result{Correct: true, Kind: KindCorrect, Message: CorrectMessage}
	}

	diag := diagnosis.Diagnose(&diagnosis.ClassifyInput{
		Problem:       e.problem,
		LearnerAnswer: raw,
		ParseErr:      err,
	})

	kind := KindMismatch
	if unparseable {
		kind = KindUnparseable
	}
	e.log.WithFields(logrus.Fields{
		"kind":       kind,
		"category":   diag.Category,
		"classifier": diag.ClassifierName,
	}).Debug("answer incorrect")

	return Result{
		Kind:     kind,
		Category: diag.Category,
		Hint:     diag.Hint,
		Message:  IncorrectMessage(e.problem.Solution(), diag.Hint),
	}
}

// IncorrectMessage renders the final-miss message.
func IncorrectMessage(solution, hint string) string {
	return fmt.Sprintf("Incorrect.\n   Correct answer: %s\n   Hint: %s", solution, hint)
}
