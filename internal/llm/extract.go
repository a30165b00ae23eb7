package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"finlit-agent/internal/apperrors"
)

// RawItem is the item shape the model is asked to emit.
type RawItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// ExtractItems parses untrusted model output into raw quiz items. Models
// sometimes wrap values in tripled quotes and surround the array with prose,
// so the scan is permissive: strip the quote junk, take the span from the
// first '[' to the last ']', and parse that. Any failure is reported as
// ErrMalformedOutput so the caller can substitute the fallback bank.
func ExtractItems(raw string) ([]RawItem, error) {
	cleaned := strings.ReplaceAll(raw, `"""`, `"`)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON array in response", apperrors.ErrMalformedOutput)
	}

	var items []RawItem
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedOutput, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty question array", apperrors.ErrMalformedOutput)
	}
	return items, nil
}

// Normalize fills in whatever the model left out so every item is fully
// specified: a numbered placeholder question, a 4-slot option array, an
// answer index inside [0,3]. Truncated or adversarial output must never
// produce a half-formed quiz item.
func Normalize(items []RawItem) []RawItem {
	for i := range items {
		if strings.TrimSpace(items[i].Question) == "" {
			items[i].Question = fmt.Sprintf("Question %d", i+1)
		}
		if len(items[i].Options) < 4 {
			items[i].Options = []string{"Option A", "Option B", "Option C", "Option D"}
		} else if len(items[i].Options) > 4 {
			items[i].Options = items[i].Options[:4]
		}
		if items[i].CorrectAnswer < 0 || items[i].CorrectAnswer > 3 {
			items[i].CorrectAnswer = 0
		}
	}
	return items
}
