package challenge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBank(t *testing.T) {
	b, err := DefaultBank()
	if err != nil {
		t.Fatalf("default bank invalid: %v", err)
	}
	if len(b.Challenges) == 0 {
		t.Fatal("default bank is empty")
	}
	for _, c := range b.Challenges {
		if c.PromptType != PromptControlledFailure {
			t.Errorf("%s prompt type = %s, want CONTROLLED_FAILURE", c.ID, c.PromptType)
		}
		if _, ok := b.TopicFor(c.ObjectiveID); !ok {
			t.Errorf("%s objective %s has no topic", c.ID, c.ObjectiveID)
		}
	}

	topic, ok := b.TopicFor("renal-aki")
	if !ok || topic != "Nephrology" {
		t.Errorf("TopicFor(renal-aki) = %q, %v; want Nephrology", topic, ok)
	}
	if _, ok := b.TopicFor("missing"); ok {
		t.Error("TopicFor(missing) should not resolve")
	}

	hf, ok := b.Challenge("hf-001")
	if !ok {
		t.Fatal("hf-001 missing")
	}
	if hf.Feedback == nil || hf.Feedback.MemoryAnchor.Type != AnchorAnalogy {
		t.Errorf("hf-001 authored feedback = %+v", hf.Feedback)
	}
}

const bankHeader = `
objectives:
  - id: obj-1
    topic: Topic One
challenges:
`

func TestParseBank_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"three options", `
  - id: c1
    objective: obj-1
    vulnerability: misconception
    question: q
    options:
      - {id: a, text: A, correct: true}
      - {id: b, text: B}
      - {id: c, text: C}
`},
		{"two correct", `
  - id: c1
    objective: obj-1
    vulnerability: misconception
    question: q
    options:
      - {id: a, text: A, correct: true}
      - {id: b, text: B, correct: true}
      - {id: c, text: C}
      - {id: d, text: D}
`},
		{"no correct", `
  - id: c1
    objective: obj-1
    vulnerability: misconception
    question: q
    options:
      - {id: a, text: A}
      - {id: b, text: B}
      - {id: c, text: C}
      - {id: d, text: D}
`},
		{"duplicate option id", `
  - id: c1
    objective: obj-1
    vulnerability: misconception
    question: q
    options:
      - {id: a, text: A, correct: true}
      - {id: A, text: B}
      - {id: c, text: C}
      - {id: d, text: D}
`},
		{"unknown vulnerability", `
  - id: c1
    objective: obj-1
    vulnerability: hubris
    question: q
    options:
      - {id: a, text: A, correct: true}
      - {id: b, text: B}
      - {id: c, text: C}
      - {id: d, text: D}
`},
		{"unknown objective", `
  - id: c1
    objective: obj-9
    vulnerability: anchoring
    question: q
    options:
      - {id: a, text: A, correct: true}
      - {id: b, text: B}
      - {id: c, text: C}
      - {id: d, text: D}
`},
		{"incomplete authored feedback", `
  - id: c1
    objective: obj-1
    vulnerability: anchoring
    question: q
    options:
      - {id: a, text: A, correct: true}
      - {id: b, text: B}
      - {id: c, text: C}
      - {id: d, text: D}
    feedback:
      misconception_explained: only this
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(bankHeader + tt.body))
			if !errors.Is(err, ErrInvalidChallenge) {
				t.Errorf("error = %v, want ErrInvalidChallenge", err)
			}
		})
	}
}

func TestLoadBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	body := bankHeader + `
  - id: c1
    objective: obj-1
    vulnerability: anchoring
    question: q
    options:
      - {id: a, text: A}
      - {id: b, text: B, correct: true}
      - {id: c, text: C}
      - {id: d, text: D}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBank(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := b.Challenge("c1")
	if !ok {
		t.Fatal("c1 missing")
	}
	if c.CorrectOption().ID != "b" {
		t.Errorf("correct option = %s, want b", c.CorrectOption().ID)
	}

	if _, err := LoadBank(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestBank_Next(t *testing.T) {
	b, err := DefaultBank()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	l := NewLineage("u1", "renal-aki")

	first, ok := b.Next(l)
	if !ok || first.ID != "aki-001" {
		t.Fatalf("first = %s, want aki-001", first.ID)
	}
	_, _ = l.Present(first)
	if _, err := l.Submit(ctx, first, submission("a", now), nil); err != nil {
		t.Fatal(err)
	}

	second, _ := b.Next(l)
	if second.ID != "aki-002" {
		t.Fatalf("second = %s, want unseen aki-002", second.ID)
	}
	_, _ = l.Present(second)
	if _, err := l.Submit(ctx, second, submission("b", now), nil); err != nil {
		t.Fatal(err)
	}

	// Both seen; aki-002 was mastered so the missed aki-001 comes back.
	third, _ := b.Next(l)
	if third.ID != "aki-001" {
		t.Errorf("third = %s, want aki-001", third.ID)
	}

	if _, ok := b.Next(NewLineage("u1", "nope")); ok {
		t.Error("expected no challenge for an unknown objective")
	}
}
