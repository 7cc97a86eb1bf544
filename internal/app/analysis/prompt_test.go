package analysis

import (
	"strings"
	"testing"

	"code_mentor/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysisPromptDeterministic(t *testing.T) {
	a := BuildAnalysisPrompt("p", "c", "easy")
	b := BuildAnalysisPrompt("p", "c", "easy")
	assert.Equal(t, a, b)

	c := BuildAnalysisPrompt("p", "c", "hard")
	assert.NotEqual(t, a, c)
}

func TestBuildAnalysisPromptContents(t *testing.T) {
	prompt := BuildAnalysisPrompt("Given an array, find two numbers.", "for (;;) {}", "medium")

	assert.Contains(t, prompt, "Given an array, find two numbers.")
	assert.Contains(t, prompt, "for (;;) {}")
	assert.Contains(t, prompt, "Requested difficulty: medium")

	for _, key := range []string{
		`"explanation"`,
		`"timeComplexity"`,
		`"spaceComplexity"`,
		`"betterApproaches"`,
		`"title"`,
		`"description"`,
		`"code"`,
		`"nextSteps"`,
	} {
		assert.Contains(t, prompt, key)
	}

	// The instructions pin complexity claims to the submitted code.
	assert.Contains(t, prompt, "visibly present in the submitted code")
	assert.Contains(t, prompt, "No markdown fences")
}

func TestBuildRecommendationPrompt(t *testing.T) {
	subs := []model.Submission{
		{Level: model.LevelHard, Problem: "Median of Two Sorted Arrays"},
		{Level: model.LevelEasy, Problem: strings.Repeat("p", 300)},
	}

	prompt := BuildRecommendationPrompt(subs)
	assert.Contains(t, prompt, "1. Level: hard\nProblem: Median of Two Sorted Arrays")
	assert.Contains(t, prompt, "2. Level: easy")

	// Long statements are truncated to a prefix.
	require.NotContains(t, prompt, strings.Repeat("p", 300))
	assert.Contains(t, prompt, strings.Repeat("p", problemSummaryLimit))
}
