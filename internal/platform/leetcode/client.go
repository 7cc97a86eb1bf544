package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"code_mentor/internal/common"
	"code_mentor/internal/domain/model"

	slugify "github.com/gosimple/slug"
)

const (
	DefaultEndpoint = "https://leetcode.com/graphql"

	// problemPathMarker identifies a full problem-listing URL; the slug is
	// the path segment immediately after it.
	problemPathMarker = "/problems/"
)

const questionQuery = `query getQuestionDetail($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionFrontendId
    title
    difficulty
    content
    exampleTestcases
    topicTags { name }
  }
}`

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	digitsOnly     = regexp.MustCompile(`^[0-9]+$`)

	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&#39;", "'",
		"&amp;", "&",
	)
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithHTTPClient is used by tests to inject a fake transport.
func NewClientWithHTTPClient(endpoint string, hc *http.Client) *Client {
	c := NewClient(endpoint)
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// ExtractSlug derives the canonical title slug from a problem URL or a bare
// identifier. Numeric ids are a distinct unsupported case: LeetCode's
// GraphQL surface only resolves slugs, and guessing would return wrong data.
func ExtractSlug(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("empty problem identifier: %w", common.ErrBadRequest)
	}

	if idx := strings.Index(trimmed, problemPathMarker); idx >= 0 {
		rest := trimmed[idx+len(problemPathMarker):]
		if cut := strings.IndexAny(rest, "/?#"); cut >= 0 {
			rest = rest[:cut]
		}
		if rest == "" {
			return "", fmt.Errorf("problem URL has no slug segment: %w", common.ErrBadRequest)
		}
		return rest, nil
	}

	if digitsOnly.MatchString(trimmed) {
		return "", fmt.Errorf("numeric problem ids are not supported yet: %w", common.ErrUnsupported)
	}

	if slugify.IsSlug(trimmed) {
		return trimmed, nil
	}
	return slugify.Make(trimmed), nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type questionPayload struct {
	Data struct {
		Question *struct {
			QuestionFrontendID string `json:"questionFrontendId"`
			Title              string `json:"title"`
			Difficulty         string `json:"difficulty"`
			Content            string `json:"content"`
			ExampleTestcases   string `json:"exampleTestcases"`
			TopicTags          []struct {
				Name string `json:"name"`
			} `json:"topicTags"`
		} `json:"question"`
	} `json:"data"`
}

// FetchBySlug issues a single GraphQL query for the question and returns
// the normalized record with markup stripped.
func (c *Client) FetchBySlug(ctx context.Context, titleSlug string) (*model.FetchedProblem, error) {
	reqBody, err := json.Marshal(graphqlRequest{
		Query:     strings.ReplaceAll(questionQuery, "\n", " "),
		Variables: map[string]any{"titleSlug": titleSlug},
	})
	if err != nil {
		return nil, fmt.Errorf("leetcode: marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("leetcode: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leetcode: query failed: %v: %w", err, common.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leetcode: unexpected status %s: %w", resp.Status, common.ErrServiceUnavailable)
	}

	var payload questionPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("leetcode: decode response: %w", err)
	}

	q := payload.Data.Question
	if q == nil || q.Title == "" {
		return nil, fmt.Errorf("question %q not found: %w", titleSlug, common.ErrNotFound)
	}

	topics := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		topics = append(topics, tag.Name)
	}

	return &model.FetchedProblem{
		ID:         q.QuestionFrontendID,
		Title:      q.Title,
		Difficulty: model.Difficulty(strings.ToLower(q.Difficulty)),
		Statement:  StripHTML(q.Content),
		Examples:   q.ExampleTestcases,
		Topics:     topics,
	}, nil
}

// StripHTML removes tags, un-escapes the common named entities and trims.
func StripHTML(html string) string {
	text := htmlTagPattern.ReplaceAllString(html, "")
	return strings.TrimSpace(entityReplacer.Replace(text))
}
