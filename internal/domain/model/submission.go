package model

import "time"

// Submission is written exactly once per successful analysis and is
// immutable afterwards. Analysis holds the raw provider text verbatim,
// typically JSON-encoded.
type Submission struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Problem   string     `json:"problem"`
	Code      string     `json:"code"`
	Analysis  string     `json:"analysis"`
	Level     Difficulty `json:"level"`
	CreatedAt time.Time  `json:"created_at"`
}

// SubmissionStats are per-user aggregate counts for the dashboard.
type SubmissionStats struct {
	Total  int `json:"total"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}
