package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.0-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
}

func TestGeminiSchema_FeedbackShape(t *testing.T) {
	s := geminiSchema(feedbackLikeSchema().Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"correct_concept", "memory_anchor"}, s.Required)
	require.Contains(t, s.Properties, "memory_anchor")

	anchor := s.Properties["memory_anchor"]
	assert.Equal(t, genai.TypeObject, anchor.Type)
	assert.Equal(t, []string{"mnemonic", "analogy", "patient_story"}, anchor.Properties["type"].Enum)

	refs := s.Properties["references"]
	require.NotNil(t, refs.Items)
	assert.Equal(t, genai.TypeArray, refs.Type)
	assert.Equal(t, genai.TypeString, refs.Items.Type)
}

func TestGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	s := geminiSchema(map[string]any{"type": "null", "required": []string{"x"}})
	assert.Equal(t, genai.TypeString, s.Type)
	assert.Equal(t, []string{"x"}, s.Required)
}
