package analysis

import (
	"strings"
	"unicode"

	"code_mentor/internal/domain/model"
)

const (
	// minSubstantiveLength is the minimum stripped length below which a
	// submission is treated as incomplete.
	minSubstantiveLength = 120

	// placeholderFragment is "write your code here" with whitespace removed.
	placeholderFragment = "writeyourcodehere"

	trivialReturnFragment = "return0"

	notApplicable = "N/A"

	incompleteMessage = "The submitted code looks incomplete or like editor boilerplate, so no complexity analysis applies. Submit a full attempt to get a real review."
)

// structureFragments are keyword fragments whose presence marks code as a
// genuine attempt even when it ends in a bare return 0.
var structureFragments = []string{"for", "while", "if", "map", "vector", "array"}

// stripCode removes all whitespace and lower-cases the result.
func stripCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// IsBoilerplate reports whether submitted code is boilerplate/incomplete:
// too short after whitespace removal, containing the editor placeholder
// phrase, or a trivial return 0 with no control flow or data structures.
func IsBoilerplate(code string) bool {
	stripped := stripCode(code)

	if len(stripped) < minSubstantiveLength {
		return true
	}
	if strings.Contains(stripped, placeholderFragment) {
		return true
	}
	if strings.Contains(stripped, trivialReturnFragment) {
		for _, fragment := range structureFragments {
			if strings.Contains(stripped, fragment) {
				return false
			}
		}
		return true
	}
	return false
}

// ApplyBoilerplateOverride suppresses fabricated complexity claims when the
// submitted code is boilerplate. The override applies to the returned copy
// only; the persisted analysis blob keeps the raw provider text.
func ApplyBoilerplateOverride(a model.NormalizedAnalysis, code string) model.NormalizedAnalysis {
	if !IsBoilerplate(code) {
		return a
	}
	a.Explanation = incompleteMessage
	a.TimeComplexity = notApplicable
	a.SpaceComplexity = notApplicable
	return a
}
