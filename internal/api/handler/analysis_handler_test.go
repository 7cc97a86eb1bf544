package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"code_mentor/internal/app/service"
	"code_mentor/internal/common"
	"code_mentor/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct{ user *model.User }

func (s *stubUserRepo) Create(context.Context, *model.User) error { return nil }

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, common.ErrNotFound
}

func (s *stubUserRepo) FindByID(context.Context, string) (*model.User, error) {
	return nil, common.ErrNotFound
}

type stubSubmissionRepo struct{ created []*model.Submission }

func (s *stubSubmissionRepo) Create(_ context.Context, sub *model.Submission) error {
	s.created = append(s.created, sub)
	return nil
}

func (s *stubSubmissionRepo) ListByUser(context.Context, string) ([]model.Submission, error) {
	return []model.Submission{}, nil
}

func (s *stubSubmissionRepo) RecentByUser(context.Context, string, int) ([]model.Submission, error) {
	return []model.Submission{}, nil
}

func (s *stubSubmissionRepo) CountByLevel(context.Context, string) (*model.SubmissionStats, error) {
	return &model.SubmissionStats{}, nil
}

type stubProvider struct{ text string }

func (s *stubProvider) Complete(context.Context, string) (string, error) { return s.text, nil }

func newTestRouter(svc *service.AnalysisService) http.Handler {
	r := chi.NewRouter()
	r.Route("/analyze", NewAnalysisHandler(svc).RegisterRoutes)
	return r
}

func TestAnalyzeEndpointInvalidPayload(t *testing.T) {
	svc := service.NewAnalysisService(&stubUserRepo{}, &stubSubmissionRepo{}, &stubProvider{}, 10)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/analyze/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestAnalyzeEndpointUnknownUser(t *testing.T) {
	subs := &stubSubmissionRepo{}
	svc := service.NewAnalysisService(&stubUserRepo{}, subs, &stubProvider{text: "{}"}, 10)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/analyze/",
		strings.NewReader(`{"email":"ghost@example.com","problem":"p","code":"c"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, subs.created)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestAnalyzeEndpointHappyPath(t *testing.T) {
	users := &stubUserRepo{user: &model.User{ID: "u-1", Email: "dev@example.com"}}
	subs := &stubSubmissionRepo{}
	provider := &stubProvider{text: `{"explanation":"x"}`}
	svc := service.NewAnalysisService(users, subs, provider, 10)
	router := newTestRouter(svc)

	payload := map[string]string{
		"email":      "dev@example.com",
		"problem":    "Two Sum",
		"code": "unordered_map<int, int> seen; for (int i = 0; i < nums.size(); i++) { int want = target - nums[i]; if (seen.count(want)) return {seen[want], i}; seen[nums[i]] = i; } return {}; // single pass over the input keeps this linear",
		"difficulty": "hard",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze/", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp service.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, model.LevelHard, resp.Level)
	assert.Equal(t, "x", resp.Analysis.Explanation)
	require.Len(t, subs.created, 1)
}

func TestRecommendationsEndpointShape(t *testing.T) {
	users := &stubUserRepo{user: &model.User{ID: "u-1", Email: "dev@example.com"}}
	svc := service.NewAnalysisService(users, &stubSubmissionRepo{}, &stubProvider{}, 10)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/analyze/recommendations?email=dev@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["result"], "zero-history callers get the fixed message")
}
