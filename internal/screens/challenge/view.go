package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	cfl "github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/ui/components"
	"github.com/abhisek/calibra/internal/ui/theme"
)

// View renders the screen content.
func (s *ChallengeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.contextLine())
	b.WriteString("\n\n")
	b.WriteString(s.choices.View())
	b.WriteString("\n")

	switch s.phase {
	case phaseConfidence:
		b.WriteString(theme.Section.Render("How confident are you?"))
		b.WriteString("\n")
		b.WriteString(s.confidence.View())
	case phaseEmotion:
		b.WriteString(theme.Section.Render("How do you feel about it?"))
		b.WriteString("\n")
		b.WriteString(s.emotions.View())
	case phaseNotes:
		b.WriteString(theme.Section.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(s.notes.View())
	case phaseSubmitting:
		b.WriteString(theme.Hint.Render("Grading..."))
	case phaseResult:
		b.WriteString(s.resultView(width))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	content := b.String()
	cardWidth := min(width-4, 90)
	if cardWidth < 20 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(cardWidth).Render(content))
}

func (s *ChallengeScreen) contextLine() string {
	parts := []string{
		theme.Subtitle.Render(fmt.Sprintf("Attempt %d", s.presentation.AttemptNumber)),
		theme.Subtitle.Render(s.challenge.VulnerabilityType.DisplayName()),
	}
	if msg := s.presentation.LastTimeMessage(); msg != "" {
		parts = append(parts, theme.Hint.Render(msg))
	}
	return strings.Join(parts, theme.Muted.Render("  ·  "))
}

func (s *ChallengeScreen) resultView(width int) string {
	a := s.attempt
	if a == nil {
		return ""
	}
	var b strings.Builder

	if a.IsCorrect {
		b.WriteString(theme.Correct.Render("Correct"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite"))
	}
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	conf := components.NewProgressBar("Confidence", float64(a.Confidence-1)*25, barWidth)
	score := components.NewProgressBar("Score     ", a.Score, barWidth)
	if !a.IsCorrect {
		score.Color = lipgloss.NewStyle().Background(theme.Error)
	}
	b.WriteString(conf.View() + "\n" + score.View() + "\n\n")

	if a.CelebrationMessage != "" {
		b.WriteString(theme.Body.Render(a.CelebrationMessage))
		b.WriteString("\n")
	}
	if a.Feedback != nil {
		b.WriteString(feedbackView(a.Feedback))
	}
	if len(a.RetrySchedule) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Section.Render("Retries scheduled"))
		b.WriteString("\n")
		for _, t := range a.RetrySchedule {
			b.WriteString(theme.Muted.Render("  " + t.Local().Format("Mon Jan 2 15:04")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func feedbackView(fb *cfl.CorrectiveFeedback) string {
	var b strings.Builder
	section := func(title, body string) {
		if body == "" {
			return
		}
		b.WriteString(theme.Section.Render(title))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(body))
		b.WriteString("\n")
	}
	section("The misconception", fb.MisconceptionExplained)
	section("Why that answer is wrong", fb.WhyAnswerWrong)
	section("Correct concept", fb.CorrectConcept)
	section("Clinical context", fb.ClinicalContext)
	if fb.MemoryAnchor.Content != "" {
		section("Remember", fb.MemoryAnchor.Content)
		if fb.MemoryAnchor.Explanation != "" {
			b.WriteString(theme.Hint.Render(fb.MemoryAnchor.Explanation))
			b.WriteString("\n")
		}
	}
	return b.String()
}
