package analysis

import (
	"testing"

	"code_mentor/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMalformedInputYieldsDefaults(t *testing.T) {
	inputs := []string{
		"",
		"not json at all",
		"```json\n{}\n```",
		`{"explanation": "unterminated`,
		"[1, 2, 3]",
		"null",
	}

	for _, raw := range inputs {
		got := Normalize(raw)
		assert.Equal(t, "", got.Explanation, "input %q", raw)
		assert.Equal(t, "", got.TimeComplexity, "input %q", raw)
		assert.Equal(t, "", got.SpaceComplexity, "input %q", raw)
		assert.Equal(t, "", got.NextSteps, "input %q", raw)
		require.NotNil(t, got.BetterApproaches, "input %q", raw)
		assert.Empty(t, got.BetterApproaches, "input %q", raw)
	}
}

func TestNormalizeCoercesNonStringFieldsToEmpty(t *testing.T) {
	got := Normalize(`{
		"explanation": 42,
		"timeComplexity": null,
		"spaceComplexity": {"nested": true},
		"nextSteps": ["a", "b"]
	}`)

	assert.Equal(t, "", got.Explanation)
	assert.Equal(t, "", got.TimeComplexity)
	assert.Equal(t, "", got.SpaceComplexity)
	assert.Equal(t, "", got.NextSteps)
}

func TestNormalizeBetterApproachesNotAList(t *testing.T) {
	inputs := []string{
		`{"betterApproaches": "use a hash map"}`,
		`{"betterApproaches": {"title": "t"}}`,
		`{"betterApproaches": 3}`,
		`{"betterApproaches": null}`,
		`{}`,
	}

	for _, raw := range inputs {
		got := Normalize(raw)
		require.NotNil(t, got.BetterApproaches, "input %q", raw)
		assert.Empty(t, got.BetterApproaches, "input %q", raw)
	}
}

func TestNormalizeBetterApproachesElementsCoercedIndependently(t *testing.T) {
	got := Normalize(`{"betterApproaches": [
		{"title": "Hash map", "description": "one pass", "code": "m := map[int]int{}", "timeComplexity": "O(n)", "spaceComplexity": "O(n)"},
		"just a string",
		{"title": 42, "description": "partial"}
	]}`)

	require.Len(t, got.BetterApproaches, 3)
	assert.Equal(t, model.BetterApproach{
		Title:           "Hash map",
		Description:     "one pass",
		Code:            "m := map[int]int{}",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	}, got.BetterApproaches[0])
	assert.Equal(t, model.BetterApproach{}, got.BetterApproaches[1])
	assert.Equal(t, model.BetterApproach{Description: "partial"}, got.BetterApproaches[2])
}

func TestNormalizePassthrough(t *testing.T) {
	got := Normalize(`{
		"explanation": "iterates once",
		"timeComplexity": "O(n)",
		"spaceComplexity": "O(1)",
		"betterApproaches": [],
		"nextSteps": "try two pointers"
	}`)

	assert.Equal(t, "iterates once", got.Explanation)
	assert.Equal(t, "O(n)", got.TimeComplexity)
	assert.Equal(t, "O(1)", got.SpaceComplexity)
	assert.Equal(t, "try two pointers", got.NextSteps)
	assert.Empty(t, got.BetterApproaches)
}
