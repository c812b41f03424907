package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedbackLikeSchema mirrors the structure of corrective feedback.
func feedbackLikeSchema() *Schema {
	return &Schema{
		Name:        "test-feedback",
		Description: "Corrective feedback for a missed question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct_concept": map[string]any{"type": "string"},
				"memory_anchor": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":    map[string]any{"type": "string", "enum": []any{"mnemonic", "analogy", "patient_story"}},
						"content": map[string]any{"type": "string"},
					},
					"required": []any{"type", "content"},
				},
				"references": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"correct_concept", "memory_anchor"},
		},
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		invalid bool
	}{
		{
			name: "complete",
			raw:  `{"correct_concept":"Troponin peaks at 24h","memory_anchor":{"type":"mnemonic","content":"T for time"},"references":["ESC 2023"]}`,
		},
		{
			name: "optional field omitted",
			raw:  `{"correct_concept":"x","memory_anchor":{"type":"analogy","content":"y"}}`,
		},
		{
			name:    "missing required",
			raw:     `{"correct_concept":"x"}`,
			invalid: true,
		},
		{
			name:    "enum violation",
			raw:     `{"correct_concept":"x","memory_anchor":{"type":"rhyme","content":"y"}}`,
			invalid: true,
		},
		{
			name:    "wrong item type",
			raw:     `{"correct_concept":"x","memory_anchor":{"type":"analogy","content":"y"},"references":[1,2]}`,
			invalid: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			invalid: true,
		},
		{
			name:    "empty",
			raw:     ``,
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := feedbackLikeSchema().validate(json.RawMessage(tt.raw))
			if !tt.invalid {
				assert.NoError(t, err)
				return
			}
			var inv *InvalidResponseError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, "invalid_response", ErrorClass(err))
		})
	}
}

func TestSchemaValidate_NilSchema(t *testing.T) {
	var s *Schema
	assert.NoError(t, s.validate(json.RawMessage(`anything`)))
}

func TestFinish(t *testing.T) {
	req := Request{Schema: feedbackLikeSchema()}
	good := json.RawMessage(`{"correct_concept":"x","memory_anchor":{"type":"analogy","content":"y"}}`)

	resp, err := finish(req, good, newUsage(10, 5), "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, 15, resp.Usage.TotalTokens)

	_, err = finish(req, json.RawMessage(`{"correct_concept":"x","mem`), Usage{}, "m", StopMaxTokens)
	var trunc *TruncatedError
	assert.ErrorAs(t, err, &trunc)

	resp, err = finish(Request{}, json.RawMessage(`plain text`), Usage{}, "m", StopMaxTokens)
	require.NoError(t, err, "unstructured output may be cut short")
	assert.Equal(t, StopMaxTokens, resp.StopReason)
}
