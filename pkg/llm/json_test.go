package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{
			name:     "bare object",
			response: `{"headline": "test"}`,
			want:     `{"headline": "test"}`,
		},
		{
			name:     "fenced json",
			response: "Here you go:\n```json\n{\"a\": 1}\n```\nHope that helps!",
			want:     `{"a": 1}`,
		},
		{
			name:     "fence without language tag",
			response: "```\n[1, 2, 3]\n```",
			want:     `[1, 2, 3]`,
		},
		{
			name:     "think block prefix",
			response: "<think>the user wants JSON</think>{\"ok\": true}",
			want:     `{"ok": true}`,
		},
		{
			name:     "prose around object",
			response: `Sure! The metadata is {"headline": "Bakery"} as requested.`,
			want:     `{"headline": "Bakery"}`,
		},
		{
			name:     "braces inside strings",
			response: `{"text": "a } inside \" quotes", "n": 1}`,
			want:     `{"text": "a } inside \" quotes", "n": 1}`,
		},
		{
			name:     "nested objects",
			response: `{"outer": {"inner": [1, {"deep": true}]}}`,
			want:     `{"outer": {"inner": [1, {"deep": true}]}}`,
		},
		{
			name:     "array before object text",
			response: `["a", "b"] trailing prose`,
			want:     `["a", "b"]`,
		},
		{
			name:     "no json at all",
			response: "I cannot produce metadata for this image.",
			wantErr:  true,
		},
		{
			name:     "unbalanced braces",
			response: `{"headline": "truncated`,
			wantErr:  true,
		},
		{
			name:     "empty",
			response: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.response)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSONResponse(t *testing.T) {
	type payload struct {
		Headline string   `json:"headline"`
		Keywords []string `json:"keywords"`
	}

	got, err := ParseJSONResponse[payload]("```json\n{\"headline\": \"Bread\", \"keywords\": [\"bakery\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Bread", got.Headline)
	assert.Equal(t, []string{"bakery"}, got.Keywords)
}

func TestParseJSONResponse_ParseError(t *testing.T) {
	_, err := ParseJSONResponse[map[string]string]("not json")
	require.Error(t, err)
	assert.Equal(t, CodeParseError, CodeOf(err))
	assert.False(t, IsRetryable(err))
}

func TestParseJSONResponse_TypeMismatch(t *testing.T) {
	type payload struct {
		Count int `json:"count"`
	}

	_, err := ParseJSONResponse[payload](`{"count": "not-a-number"}`)
	require.Error(t, err)
	assert.Equal(t, CodeParseError, CodeOf(err))
}
