package challenge

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func validFeedback() *CorrectiveFeedback {
	return &CorrectiveFeedback{
		MisconceptionExplained: "Casts were read as a prerenal sign.",
		WhyAnswerWrong:         "Muddy brown casts point to tubular necrosis.",
		CorrectConcept:         "Prerenal AKI conserves sodium, so FENa is low.",
		ClinicalContext:        "Fluids help prerenal AKI but not established ATN.",
		MemoryAnchor: MemoryAnchor{
			Type:        AnchorPatientStory,
			Content:     "The marathon runner with dark urine.",
			Explanation: "Dehydration first, casts only if it goes on too long.",
		},
	}
}

func TestCorrectiveFeedback_Validate(t *testing.T) {
	if err := validFeedback().Validate(); err != nil {
		t.Fatalf("valid feedback rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(f *CorrectiveFeedback)
		want   string
	}{
		{"missing misconception", func(f *CorrectiveFeedback) { f.MisconceptionExplained = "" }, "misconceptionExplained"},
		{"blank clinical context", func(f *CorrectiveFeedback) { f.ClinicalContext = "  " }, "clinicalContext"},
		{"missing anchor content", func(f *CorrectiveFeedback) { f.MemoryAnchor.Content = "" }, "memoryAnchor.content"},
		{"unknown anchor type", func(f *CorrectiveFeedback) { f.MemoryAnchor.Type = "song" }, "memory anchor type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFeedback()
			tt.mutate(f)
			err := f.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}

	var nilFeedback *CorrectiveFeedback
	if err := nilFeedback.Validate(); !errors.Is(err, ErrNoFeedback) {
		t.Errorf("nil feedback error = %v, want ErrNoFeedback", err)
	}
}

func TestTemplateFeedback(t *testing.T) {
	c := testChallenge("aki-1")
	fb, err := TemplateFeedback{}.Feedback(context.Background(), FeedbackInput{
		Challenge: c,
		Attempt:   Attempt{UserAnswer: "a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fb.Validate(); err != nil {
		t.Fatalf("template feedback invalid: %v", err)
	}
	if !strings.Contains(fb.WhyAnswerWrong, "Muddy brown casts") || !strings.Contains(fb.WhyAnswerWrong, "FENa below 1%") {
		t.Errorf("WhyAnswerWrong = %q, want chosen and correct option text", fb.WhyAnswerWrong)
	}
	if !strings.Contains(fb.MisconceptionExplained, "gap") {
		t.Errorf("MisconceptionExplained = %q, want knowledge gap wording", fb.MisconceptionExplained)
	}
}

func TestTemplateFeedback_UsesAuthoredNotes(t *testing.T) {
	c := testChallenge("aki-1")
	c.Explanation = "FENa under 1% means the tubules still work."
	c.ClinicalContext = "Check volume status first."
	fb, _ := TemplateFeedback{}.Feedback(context.Background(), FeedbackInput{Challenge: c, Attempt: Attempt{UserAnswer: "c"}})
	if fb.CorrectConcept != c.Explanation {
		t.Errorf("CorrectConcept = %q, want %q", fb.CorrectConcept, c.Explanation)
	}
	if fb.ClinicalContext != c.ClinicalContext {
		t.Errorf("ClinicalContext = %q, want %q", fb.ClinicalContext, c.ClinicalContext)
	}
}

type staticSource struct {
	fb  *CorrectiveFeedback
	err error
}

func (s staticSource) Feedback(context.Context, FeedbackInput) (*CorrectiveFeedback, error) {
	return s.fb, s.err
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	in := FeedbackInput{Challenge: testChallenge("aki-1"), Attempt: Attempt{UserAnswer: "a"}}

	t.Run("authored wins", func(t *testing.T) {
		c := in.Challenge
		c.Feedback = validFeedback()
		fb, err := NewFeedbackChain(staticSource{err: errors.New("should not be called")}).
			Feedback(ctx, FeedbackInput{Challenge: c, Attempt: in.Attempt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fb.MemoryAnchor.Type != AnchorPatientStory {
			t.Errorf("anchor type = %s, want authored patient_story", fb.MemoryAnchor.Type)
		}
	})

	t.Run("generated before template", func(t *testing.T) {
		gen := validFeedback()
		gen.CorrectConcept = "generated"
		fb, err := NewFeedbackChain(staticSource{fb: gen}).Feedback(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fb.CorrectConcept != "generated" {
			t.Errorf("CorrectConcept = %q, want generated", fb.CorrectConcept)
		}
	})

	t.Run("invalid generated falls back", func(t *testing.T) {
		bad := validFeedback()
		bad.WhyAnswerWrong = ""
		fb, err := NewFeedbackChain(staticSource{fb: bad}).Feedback(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fb.MemoryAnchor.Type != AnchorMnemonic {
			t.Errorf("anchor type = %s, want template mnemonic", fb.MemoryAnchor.Type)
		}
	})

	t.Run("nil generator skipped", func(t *testing.T) {
		if _, err := NewFeedbackChain(nil).Feedback(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("all fail", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Chain{staticSource{err: boom}}.Feedback(ctx, in)
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want boom", err)
		}
		if _, err := (Chain{}).Feedback(ctx, in); !errors.Is(err, ErrNoFeedback) {
			t.Errorf("empty chain error = %v, want ErrNoFeedback", err)
		}
	})
}
