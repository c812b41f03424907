package patterns

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/calibra/internal/calibration"
)

var t0 = time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)

func attempt(objective string, confidence int, score float64, at time.Duration) calibration.Assessment {
	return calibration.Assessment{
		PromptID:      fmt.Sprintf("%s-%d-%v", objective, confidence, at),
		UserID:        "u1",
		ObjectiveID:   objective,
		PreConfidence: confidence,
		Score:         score,
		CreatedAt:     t0.Add(at),
	}
}

var topics = TopicMap{
	"cardio-1": "Cardiology",
	"cardio-2": "Cardiology",
	"renal-1":  "Nephrology",
	"pharm-1":  "Pharmacology",
}

func TestDetect_GroupsByTopic(t *testing.T) {
	attempts := []calibration.Assessment{
		attempt("cardio-1", 5, 40, 0),           // incorrect and overconfident
		attempt("cardio-2", 2, 20, time.Hour),   // incorrect
		attempt("cardio-1", 5, 70, 2*time.Hour), // overconfident only
		attempt("renal-1", 2, 10, 3*time.Hour),  // incorrect
		attempt("renal-1", 3, 90, 4*time.Hour),  // fine: skipped
	}

	got, err := Detect(attempts, Options{Topics: topics})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []FailurePattern{
		{
			PatternID:          PatternID("Cardiology"),
			Category:           "Cardiology",
			AffectedObjectives: []string{"cardio-1", "cardio-2"},
			FailureCount:       3,
			OverconfidentCount: 2,
			IncorrectCount:     2,
			LastFailedAt:       t0.Add(2 * time.Hour),
		},
		{
			PatternID:          PatternID("Nephrology"),
			Category:           "Nephrology",
			AffectedObjectives: []string{"renal-1"},
			FailureCount:       1,
			IncorrectCount:     1,
			LastFailedAt:       t0.Add(3 * time.Hour),
		},
	}
	ignoreRemediation := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Remediation"
	}, cmp.Ignore())
	if diff := cmp.Diff(want, got, ignoreRemediation); diff != "" {
		t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
	}
	for _, p := range got {
		if p.Remediation == "" {
			t.Errorf("pattern %s has no remediation", p.Category)
		}
	}
}

func TestDetect_CapsAtFiveSortedDescending(t *testing.T) {
	var attempts []calibration.Assessment
	for i := 0; i < 8; i++ {
		obj := fmt.Sprintf("obj-%d", i)
		for j := 0; j <= i; j++ {
			attempts = append(attempts, attempt(obj, 4, 10, time.Duration(i*10+j)*time.Minute))
		}
	}

	got, err := Detect(attempts, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxPatterns {
		t.Fatalf("len = %d, want %d", len(got), MaxPatterns)
	}
	for i := 1; i < len(got); i++ {
		if got[i].FailureCount > got[i-1].FailureCount {
			t.Errorf("patterns not sorted: %d before %d", got[i-1].FailureCount, got[i].FailureCount)
		}
	}
	if got[0].Category != "obj-7" || got[0].FailureCount != 8 {
		t.Errorf("top pattern = %s/%d, want obj-7/8", got[0].Category, got[0].FailureCount)
	}
}

func TestDetect_TieBreak(t *testing.T) {
	attempts := []calibration.Assessment{
		attempt("pharm-1", 1, 10, 0),
		attempt("renal-1", 1, 10, 5*time.Hour),
		attempt("cardio-1", 1, 10, 5*time.Hour),
	}

	got, err := Detect(attempts, Options{Topics: topics})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var order []string
	for _, p := range got {
		order = append(order, p.Category)
	}
	// Most recent first, then alphabetical among equal timestamps.
	want := []string{"Cardiology", "Nephrology", "Pharmacology"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDetect_Empty(t *testing.T) {
	got, err := Detect(nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDetect_InvalidAssessment(t *testing.T) {
	_, err := Detect([]calibration.Assessment{attempt("cardio-1", 7, 10, 0)}, Options{})
	if !errors.Is(err, calibration.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestDetect_FallsBackToObjective(t *testing.T) {
	got, err := Detect([]calibration.Assessment{attempt("unknown-9", 1, 0, 0)}, Options{Topics: topics})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Category != "unknown-9" {
		t.Errorf("got %+v, want a single unknown-9 pattern", got)
	}
}

func TestPatternID_Stable(t *testing.T) {
	if PatternID("Cardiology") != PatternID("Cardiology") {
		t.Error("PatternID is not deterministic")
	}
	if PatternID("Cardiology") == PatternID("Nephrology") {
		t.Error("distinct topics share a PatternID")
	}
}

type fixedRemediator string

func (f fixedRemediator) Remediation(FailurePattern) string { return string(f) }

func TestDetect_CustomRemediator(t *testing.T) {
	got, err := Detect([]calibration.Assessment{attempt("cardio-1", 1, 0, 0)},
		Options{Topics: topics, Remediator: fixedRemediator("see tutor")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Remediation != "see tutor" {
		t.Errorf("remediation = %q, want %q", got[0].Remediation, "see tutor")
	}
}

func TestTemplateRemediator(t *testing.T) {
	over := TemplateRemediator{}.Remediation(FailurePattern{
		Category: "Cardiology", OverconfidentCount: 3, IncorrectCount: 1,
		AffectedObjectives: []string{"cardio-1"},
	})
	if !strings.Contains(over, "more sure than right") || !strings.Contains(over, "1 objective)") {
		t.Errorf("overconfidence remediation = %q", over)
	}

	missed := TemplateRemediator{}.Remediation(FailurePattern{
		Category: "Nephrology", IncorrectCount: 4,
		AffectedObjectives: []string{"renal-1", "renal-2"},
	})
	if !strings.Contains(missed, "Review the core concepts of Nephrology") || !strings.Contains(missed, "2 objectives") {
		t.Errorf("incorrect remediation = %q", missed)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := (Config{FailingScore: 60, MaxPatterns: 9}).Validate(); err == nil {
		t.Error("expected error for max_patterns above 5")
	}
	if err := (Config{FailingScore: 120, MaxPatterns: 5}).Validate(); err == nil {
		t.Error("expected error for failing_score above 100")
	}
}
