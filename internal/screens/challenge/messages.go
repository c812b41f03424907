package challenge

import cfl "github.com/abhisek/calibra/internal/challenge"

// emotionPickedMsg is sent when an emotion menu item is chosen. An empty
// tag means the learner skipped the question.
type emotionPickedMsg struct {
	Tag cfl.EmotionTag
}

// submittedMsg carries the graded attempt back from the engine.
type submittedMsg struct {
	Attempt cfl.Attempt
	Err     error
}

// DoneMsg is sent when the learner dismisses the result.
type DoneMsg struct {
	Attempt *cfl.Attempt
}
