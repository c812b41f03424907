package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/calibra/internal/llm"
)

func validFeedbackJSON() json.RawMessage {
	return json.RawMessage(`{
		"misconception_explained": "Casts felt diagnostic of any AKI.",
		"why_answer_wrong": "Muddy brown casts indicate acute tubular necrosis, an intrinsic cause.",
		"correct_concept": "Prerenal AKI keeps tubular function, so sodium is retained and FENa is under 1%.",
		"clinical_context": "A dehydrated older patient with low FENa usually recovers with fluids.",
		"memory_anchor": {
			"type": "analogy",
			"content": "A thirsty sponge holds on to salt.",
			"explanation": "Healthy tubules under-perfused hoard sodium."
		}
	}`)
}

func TestLLMFeedback_Generates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	gen := NewLLMFeedback(mock, DefaultLLMConfig())

	in := FeedbackInput{
		Challenge: testChallenge("aki-1"),
		Attempt:   Attempt{UserAnswer: "a", Confidence: 5, EmotionTag: EmotionSurprised, AttemptNumber: 2},
	}
	fb, err := gen.Feedback(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.MemoryAnchor.Type != AnchorAnalogy {
		t.Errorf("anchor type = %s, want analogy", fb.MemoryAnchor.Type)
	}
	if fb.ClinicalContext == "" {
		t.Error("expected clinical context")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != FeedbackSchema {
		t.Error("expected the corrective feedback schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"FENa below 1%", "Learner answered: a", "confidence (1-5): 5", "surprised", "attempt 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestLLMFeedback_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.RateLimitError{}})
	_, err := NewLLMFeedback(mock, DefaultLLMConfig()).Feedback(context.Background(), FeedbackInput{Challenge: testChallenge("aki-1")})
	var rl *llm.RateLimitError
	if !errors.As(err, &rl) {
		t.Errorf("error = %v, want RateLimitError", err)
	}
}

func TestLLMFeedback_RejectsIncompleteOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"misconception_explained": "x"}`)})
	_, err := NewLLMFeedback(mock, DefaultLLMConfig()).Feedback(context.Background(), FeedbackInput{Challenge: testChallenge("aki-1")})
	if err == nil {
		t.Fatal("expected error for incomplete feedback")
	}
}

func TestLineage_UsesGeneratedFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	fb := NewFeedbackChain(NewLLMFeedback(mock, DefaultLLMConfig()))

	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	_, _ = l.Present(c)
	a, err := l.Submit(context.Background(), c, submission("a", now), fb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Feedback.MemoryAnchor.Content != "A thirsty sponge holds on to salt." {
		t.Errorf("feedback = %+v, want generated", a.Feedback)
	}
}
