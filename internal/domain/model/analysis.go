package model

// NormalizedAnalysis is the coerced form of the provider's JSON output.
// Every field is always present after normalization: strings default to ""
// and BetterApproaches to an empty list, never nil semantics over the wire.
type NormalizedAnalysis struct {
	Explanation      string           `json:"explanation"`
	TimeComplexity   string           `json:"timeComplexity"`
	SpaceComplexity  string           `json:"spaceComplexity"`
	BetterApproaches []BetterApproach `json:"betterApproaches"`
	NextSteps        string           `json:"nextSteps"`
}

type BetterApproach struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Code            string `json:"code"`
	TimeComplexity  string `json:"timeComplexity"`
	SpaceComplexity string `json:"spaceComplexity"`
}
