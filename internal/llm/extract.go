package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The model is instructed to answer with pure JSON but is not contractually
// guaranteed to: answers arrive wrapped in prose, code fences, or both.
// ExtractJSON recovers the record with an ordered sequence of strategies.
var (
	fencedJSONRe   = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	braceSpanRe    = regexp.MustCompile(`(?s)\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
	fenceMarkersRe = regexp.MustCompile("```[a-z]*\n?")
)

// ExtractJSON locates a single well-formed JSON object in free-form model
// text. Strategies, in order, stopping at first success:
//
//  1. a fenced block tagged ```json
//  2. the first balanced brace span (one level of nesting)
//  3. the whole text with fence markers stripped
//
// It returns the raw object bytes, or ok=false when no strategy yields a
// parsable object.
func ExtractJSON(text string) ([]byte, bool) {
	if text == "" {
		return nil, false
	}

	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		if obj, ok := validObject(m[1]); ok {
			return obj, true
		}
	}

	if m := braceSpanRe.FindString(text); m != "" {
		if obj, ok := validObject(m); ok {
			return obj, true
		}
	}

	cleaned := strings.TrimSpace(fenceMarkersRe.ReplaceAllString(text, ""))
	if obj, ok := validObject(cleaned); ok {
		return obj, true
	}

	return nil, false
}

// Unmarshal runs ExtractJSON and decodes the result into v.
func Unmarshal(text string, v any) bool {
	raw, ok := ExtractJSON(text)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func validObject(candidate string) ([]byte, bool) {
	candidate = strings.TrimSpace(candidate)
	if !strings.HasPrefix(candidate, "{") {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return []byte(candidate), true
}
