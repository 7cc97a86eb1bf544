package analysis

import (
	"fmt"
	"strings"

	"code_mentor/internal/domain/model"
)

// problemSummaryLimit caps how much of a problem statement is echoed into
// the recommendation prompt per submission.
const problemSummaryLimit = 120

const analysisPromptTemplate = `You are a competitive programming mentor reviewing a single submission.

Problem:
%s

Submitted code:
%s

Requested difficulty: %s

Respond with one JSON object and nothing else. No markdown fences, no prose
before or after the object. The object must contain exactly these keys,
every key present even when empty:

{
  "explanation": "",
  "timeComplexity": "",
  "spaceComplexity": "",
  "betterApproaches": [
    {"title": "", "description": "", "code": "", "timeComplexity": "", "spaceComplexity": ""}
  ],
  "nextSteps": ""
}

Rules:
- "explanation" describes what the submitted code currently does, not the textbook approach to the problem.
- Base "timeComplexity" and "spaceComplexity" only on operations visibly present in the submitted code. Never report the complexity of an ideal solution the user did not write.
- "betterApproaches" lists up to three concrete improvements with working code.
- "nextSteps" gives short, actionable practice advice.
- When you have nothing to say for a key, use "" or [] but keep the key.`

// BuildAnalysisPrompt renders the fixed analysis instruction. The template
// is deterministic; only the three inputs vary.
func BuildAnalysisPrompt(problem, code, difficulty string) string {
	return fmt.Sprintf(analysisPromptTemplate, problem, code, difficulty)
}

const recommendationPromptTemplate = `You are a competitive programming mentor.

Based on the following recent submissions, identify:
1. Weak areas
2. Patterns and topics to improve
3. 3 recommended next problem types to practice

Submissions:
%s

Be concise and actionable.`

// BuildRecommendationPrompt summarizes recent submissions, newest first,
// as numbered {level, problem prefix} lines.
func BuildRecommendationPrompt(subs []model.Submission) string {
	lines := make([]string, 0, len(subs))
	for i, sub := range subs {
		problem := sub.Problem
		if len(problem) > problemSummaryLimit {
			problem = problem[:problemSummaryLimit]
		}
		lines = append(lines, fmt.Sprintf("%d. Level: %s\nProblem: %s", i+1, sub.Level, problem))
	}
	return fmt.Sprintf(recommendationPromptTemplate, strings.Join(lines, "\n\n"))
}
