package exercise

import "github.com/abhisek/mathdrill/internal/exercise"

// exerciseReadyMsg is sent when an exercise has been generated.
type exerciseReadyMsg struct {
	Exercise *exercise.Exercise
	Err      error
}

// nextExerciseMsg requests a fresh exercise of the same topic and difficulty.
type nextExerciseMsg struct{}
