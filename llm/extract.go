package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when the model output contains no JSON object at all.
var ErrNoJSON = errors.New("no JSON object in model output")

// ExtractJSON pulls a JSON object out of loosely structured model output and
// unmarshals it into v. Models routinely wrap their answer in markdown code
// fences or surround it with prose, so the text is cleaned first: fence
// markers are stripped, then everything outside the first '{' and the last
// '}' is discarded before strict parsing.
//
// A non-nil error is an expected outcome, not an exceptional one. Callers are
// expected to substitute a fallback payload rather than propagate it.
func ExtractJSON(raw string, v any) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end < start {
		return ErrNoJSON
	}
	cleaned = cleaned[start : end+1]

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("model output is not valid JSON: %w", err)
	}
	return nil
}
