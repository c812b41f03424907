package challenge

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FeedbackInput is what a FeedbackSource sees about an incorrect attempt.
type FeedbackInput struct {
	Challenge Challenge
	Attempt   Attempt
}

// FeedbackSource produces corrective feedback for an incorrect attempt.
type FeedbackSource interface {
	Feedback(ctx context.Context, in FeedbackInput) (*CorrectiveFeedback, error)
}

// Validate checks that every field is present and the anchor type is known.
func (f *CorrectiveFeedback) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: feedback is nil", ErrNoFeedback)
	}
	fields := []struct{ name, value string }{
		{"misconceptionExplained", f.MisconceptionExplained},
		{"whyAnswerWrong", f.WhyAnswerWrong},
		{"correctConcept", f.CorrectConcept},
		{"clinicalContext", f.ClinicalContext},
		{"memoryAnchor.content", f.MemoryAnchor.Content},
		{"memoryAnchor.explanation", f.MemoryAnchor.Explanation},
	}
	var missing []string
	for _, fld := range fields {
		if strings.TrimSpace(fld.value) == "" {
			missing = append(missing, fld.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("corrective feedback missing %s", strings.Join(missing, ", "))
	}
	if !f.MemoryAnchor.Type.Valid() {
		return fmt.Errorf("corrective feedback has unknown memory anchor type %q", f.MemoryAnchor.Type)
	}
	return nil
}

// Chain tries each source in order and returns the first valid feedback.
type Chain []FeedbackSource

// Feedback implements FeedbackSource.
func (c Chain) Feedback(ctx context.Context, in FeedbackInput) (*CorrectiveFeedback, error) {
	var errs []error
	for _, src := range c {
		if src == nil {
			continue
		}
		fb, err := src.Feedback(ctx, in)
		if err == nil {
			err = fb.Validate()
		}
		if err == nil {
			return fb, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrNoFeedback
	}
	return nil, errors.Join(errs...)
}

// NewFeedbackChain returns the standard source order: authored feedback,
// then generated (when non-nil), then the template fallback.
func NewFeedbackChain(generated FeedbackSource) Chain {
	if generated == nil {
		return Chain{AuthoredFeedback{}, TemplateFeedback{}}
	}
	return Chain{AuthoredFeedback{}, generated, TemplateFeedback{}}
}

// AuthoredFeedback returns the feedback written into the challenge itself.
type AuthoredFeedback struct{}

// Feedback implements FeedbackSource.
func (AuthoredFeedback) Feedback(_ context.Context, in FeedbackInput) (*CorrectiveFeedback, error) {
	if in.Challenge.Feedback == nil {
		return nil, ErrNoFeedback
	}
	fb := *in.Challenge.Feedback
	return &fb, nil
}

// TemplateFeedback builds feedback from the challenge's options and notes.
// It never fails for a valid challenge.
type TemplateFeedback struct{}

// Feedback implements FeedbackSource.
func (TemplateFeedback) Feedback(_ context.Context, in FeedbackInput) (*CorrectiveFeedback, error) {
	c := in.Challenge
	correct := c.CorrectOption()
	chosen, ok := c.OptionByID(in.Attempt.UserAnswer)
	chosenText := in.Attempt.UserAnswer
	if ok {
		chosenText = chosen.Text
	}

	concept := c.Explanation
	if concept == "" {
		concept = fmt.Sprintf("The correct answer is %q.", correct.Text)
	}
	clinical := c.ClinicalContext
	if clinical == "" {
		clinical = fmt.Sprintf("In practice, confirm the key finding for objective %s before acting on a first impression.", c.ObjectiveID)
	}

	return &CorrectiveFeedback{
		MisconceptionExplained: misconceptionText(c.VulnerabilityType, chosenText),
		WhyAnswerWrong:         fmt.Sprintf("%q does not answer this question; %q does.", chosenText, correct.Text),
		CorrectConcept:         concept,
		ClinicalContext:        clinical,
		MemoryAnchor: MemoryAnchor{
			Type:        AnchorMnemonic,
			Content:     "Stop, Source, Switch",
			Explanation: "Stop before committing, name the source of your certainty, and switch to the strongest alternative to test it.",
		},
	}, nil
}

func misconceptionText(v VulnerabilityType, chosen string) string {
	switch v {
	case VulnOverconfidence:
		return fmt.Sprintf("%q felt right quickly, and that speed was mistaken for certainty.", chosen)
	case VulnAnchoring:
		return fmt.Sprintf("The first detail in the stem anchored you to %q and later details did not move you.", chosen)
	case VulnKnowledgeGap:
		return fmt.Sprintf("Choosing %q points to a gap in the underlying facts rather than a reasoning slip.", chosen)
	default:
		return fmt.Sprintf("Choosing %q reflects a common misconception about this topic.", chosen)
	}
}

func celebrationMessage(a Attempt) string {
	switch {
	case a.AttemptNumber == 1:
		return "Correct on the first try. Your confidence was earned."
	case a.PreviousScore != nil:
		return fmt.Sprintf("Mastered on attempt %d. Last time you scored %.0f%%; this time you got it right.",
			a.AttemptNumber, *a.PreviousScore)
	default:
		return fmt.Sprintf("Mastered on attempt %d.", a.AttemptNumber)
	}
}
