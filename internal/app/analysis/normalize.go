package analysis

import (
	"encoding/json"

	"code_mentor/internal/domain/model"
)

// Normalize coerces raw provider output into a fully-populated
// NormalizedAnalysis. It is total: malformed JSON yields all-default
// fields rather than an error, and unparseable text is never dumped into
// the explanation.
func Normalize(raw string) model.NormalizedAnalysis {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		parsed = map[string]any{}
	}

	out := model.NormalizedAnalysis{
		Explanation:      stringField(parsed, "explanation"),
		TimeComplexity:   stringField(parsed, "timeComplexity"),
		SpaceComplexity:  stringField(parsed, "spaceComplexity"),
		NextSteps:        stringField(parsed, "nextSteps"),
		BetterApproaches: []model.BetterApproach{},
	}

	if list, ok := parsed["betterApproaches"].([]any); ok {
		for _, item := range list {
			entry, _ := item.(map[string]any) // non-object entries normalize to all-empty
			out.BetterApproaches = append(out.BetterApproaches, model.BetterApproach{
				Title:           stringField(entry, "title"),
				Description:     stringField(entry, "description"),
				Code:            stringField(entry, "code"),
				TimeComplexity:  stringField(entry, "timeComplexity"),
				SpaceComplexity: stringField(entry, "spaceComplexity"),
			})
		}
	}

	return out
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
