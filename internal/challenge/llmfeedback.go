package challenge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/calibra/internal/llm"
)

// LLMConfig holds generated-feedback settings.
type LLMConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// DefaultLLMConfig returns sensible defaults for feedback generation.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   768,
		Temperature: 0.4,
	}
}

// LLMFeedback generates corrective feedback with a language model.
type LLMFeedback struct {
	provider llm.Provider
	cfg      LLMConfig
}

// NewLLMFeedback creates a generated feedback source.
func NewLLMFeedback(provider llm.Provider, cfg LLMConfig) *LLMFeedback {
	return &LLMFeedback{provider: provider, cfg: cfg}
}

// FeedbackSchema constrains generated corrective feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "corrective-feedback",
	Description: "Corrective feedback for an incorrect answer to a controlled-failure challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception_explained": map[string]any{
				"type":        "string",
				"description": "The misconception the chosen answer reveals (1-2 sentences)",
			},
			"why_answer_wrong": map[string]any{
				"type":        "string",
				"description": "Why the chosen answer is wrong for this question (1-2 sentences)",
			},
			"correct_concept": map[string]any{
				"type":        "string",
				"description": "The correct concept stated plainly (2-3 sentences)",
			},
			"clinical_context": map[string]any{
				"type":        "string",
				"description": "Where this matters in clinical practice (1-2 sentences)",
			},
			"memory_anchor": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"mnemonic", "analogy", "patient_story"},
					},
					"content": map[string]any{
						"type":        "string",
						"description": "The mnemonic, analogy or short patient story",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "How the anchor maps onto the correct concept",
					},
				},
				"required":             []any{"type", "content", "explanation"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"misconception_explained", "why_answer_wrong", "correct_concept", "clinical_context", "memory_anchor"},
		"additionalProperties": false,
	},
}

const feedbackSystemPrompt = `You are a clinical educator. A learner answered a deliberately tricky multiple-choice question incorrectly. Explain the mistake without judgment and help the correct concept stick.`

type feedbackOutput struct {
	MisconceptionExplained string `json:"misconception_explained"`
	WhyAnswerWrong         string `json:"why_answer_wrong"`
	CorrectConcept         string `json:"correct_concept"`
	ClinicalContext        string `json:"clinical_context"`
	MemoryAnchor           struct {
		Type        string `json:"type"`
		Content     string `json:"content"`
		Explanation string `json:"explanation"`
	} `json:"memory_anchor"`
}

// Feedback implements FeedbackSource.
func (g *LLMFeedback) Feedback(ctx context.Context, in FeedbackInput) (*CorrectiveFeedback, error) {
	ctx = llm.WithPurpose(ctx, "corrective-feedback")

	req := llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackUserMessage(in)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feedback generation: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}

	fb := &CorrectiveFeedback{
		MisconceptionExplained: out.MisconceptionExplained,
		WhyAnswerWrong:         out.WhyAnswerWrong,
		CorrectConcept:         out.CorrectConcept,
		ClinicalContext:        out.ClinicalContext,
		MemoryAnchor: MemoryAnchor{
			Type:        AnchorType(out.MemoryAnchor.Type),
			Content:     out.MemoryAnchor.Content,
			Explanation: out.MemoryAnchor.Explanation,
		},
	}
	if err := fb.Validate(); err != nil {
		return nil, fmt.Errorf("generated feedback: %w", err)
	}
	return fb, nil
}

func buildFeedbackUserMessage(in FeedbackInput) string {
	c := in.Challenge
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question: %s\n", c.QuestionText))
	b.WriteString("Options:\n")
	for _, o := range c.Options {
		b.WriteString(fmt.Sprintf("%s) %s\n", o.ID, o.Text))
	}
	correct := c.CorrectOption()
	b.WriteString(fmt.Sprintf("Correct answer: %s) %s\n", correct.ID, correct.Text))
	b.WriteString(fmt.Sprintf("Learner answered: %s\n", in.Attempt.UserAnswer))
	b.WriteString(fmt.Sprintf("Learner confidence (1-5): %d\n", in.Attempt.Confidence))
	if in.Attempt.EmotionTag != "" {
		b.WriteString(fmt.Sprintf("Learner felt: %s\n", in.Attempt.EmotionTag))
	}
	b.WriteString(fmt.Sprintf("Targeted weakness: %s\n", c.VulnerabilityType.DisplayName()))
	if c.Explanation != "" {
		b.WriteString(fmt.Sprintf("Author's explanation: %s\n", c.Explanation))
	}
	if in.Attempt.AttemptNumber > 1 {
		b.WriteString(fmt.Sprintf("This is attempt %d on this objective.\n", in.Attempt.AttemptNumber))
	}

	b.WriteString(`
Instructions:
1. Name the specific misconception behind the chosen option, not a generic one.
2. Explain why the chosen option fails for this question.
3. State the correct concept plainly.
4. Give one concrete clinical situation where the distinction matters.
5. Provide one memory anchor: a mnemonic, an analogy, or a short patient story.`)

	return b.String()
}
