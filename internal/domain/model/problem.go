package model

// FetchedProblem is the normalized record returned by the problem source.
// It is transient: problems are cached, not persisted.
type FetchedProblem struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Statement  string     `json:"statement"`
	Examples   string     `json:"examples"`
	Topics     []string   `json:"topics"`
}
