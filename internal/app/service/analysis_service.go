package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"code_mentor/internal/app/analysis"
	"code_mentor/internal/common"
	"code_mentor/internal/domain/model"
	"code_mentor/internal/domain/repository"
	"code_mentor/internal/platform/llm"

	"github.com/google/uuid"
)

const (
	notEnoughDataMessage = "Not enough data to generate recommendations. Analyze a few submissions first."

	recommendationsBusyMessage = "Recommendations are temporarily unavailable. Please try again in a minute."
)

// AnalysisService runs the single-pass analysis pipeline: auth check,
// difficulty resolution, prompt + completion, normalization, persistence.
// No stage is retried; any failure aborts the request with a typed error.
type AnalysisService struct {
	userRepo       repository.UserRepository
	submissionRepo repository.SubmissionRepository
	provider       llm.Provider
	recentWindow   int
}

func NewAnalysisService(
	userRepo repository.UserRepository,
	submissionRepo repository.SubmissionRepository,
	provider llm.Provider,
	recentWindow int,
) *AnalysisService {
	return &AnalysisService{
		userRepo:       userRepo,
		submissionRepo: submissionRepo,
		provider:       provider,
		recentWindow:   recentWindow,
	}
}

type AnalyzeRequest struct {
	Email      string `json:"email"`
	Problem    string `json:"problem"`
	Code       string `json:"code"`
	Difficulty string `json:"difficulty,omitempty"`
}

type AnalyzeResponse struct {
	ID       string                   `json:"id"`
	Level    model.Difficulty         `json:"level"`
	Analysis model.NormalizedAnalysis `json:"analysis"`
}

func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	user, err := s.requireUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Problem) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, common.Errorf("problem and code are required: %w", common.ErrBadRequest)
	}

	level := model.ResolveDifficulty(req.Difficulty)

	prompt := analysis.BuildAnalysisPrompt(req.Problem, req.Code, string(level))
	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	normalized := analysis.ApplyBoilerplateOverride(analysis.Normalize(raw), req.Code)

	// The stored blob is the raw pre-override provider text; the override
	// shapes only what the caller sees.
	submission := &model.Submission{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Problem:   req.Problem,
		Code:      req.Code,
		Analysis:  raw,
		Level:     level,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	log.Printf("Analysis %s stored for user %s (level %s)", submission.ID, user.ID, level)
	return &AnalyzeResponse{ID: submission.ID, Level: level, Analysis: normalized}, nil
}

// ListSubmissions returns the user's submissions, most recent first.
func (s *AnalysisService) ListSubmissions(ctx context.Context, email string) ([]model.Submission, error) {
	user, err := s.requireUser(ctx, email)
	if err != nil {
		return nil, err
	}
	subs, err := s.submissionRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

// Stats returns per-difficulty submission counts for the dashboard.
func (s *AnalysisService) Stats(ctx context.Context, email string) (*model.SubmissionStats, error) {
	user, err := s.requireUser(ctx, email)
	if err != nil {
		return nil, err
	}
	stats, err := s.submissionRepo.CountByLevel(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}
	return stats, nil
}

// Recommendations summarizes the user's recent submissions and asks the
// provider for practice suggestions. With no history it short-circuits to a
// fixed message, and a rate-limited provider degrades instead of failing.
func (s *AnalysisService) Recommendations(ctx context.Context, email string) (string, error) {
	user, err := s.requireUser(ctx, email)
	if err != nil {
		return "", err
	}

	subs, err := s.submissionRepo.RecentByUser(ctx, user.ID, s.recentWindow)
	if err != nil {
		return "", fmt.Errorf("failed to load recent submissions: %w", err)
	}
	if len(subs) == 0 {
		return notEnoughDataMessage, nil
	}

	text, err := s.provider.Complete(ctx, analysis.BuildRecommendationPrompt(subs))
	if err != nil {
		if errors.Is(err, common.ErrRateLimited) {
			log.Printf("WARN: recommendations rate limited for user %s", user.ID)
			return recommendationsBusyMessage, nil
		}
		return "", fmt.Errorf("recommendations failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// requireUser enforces the auth precondition: a non-empty email that maps
// to a synced user. The two failure modes stay distinguishable.
func (s *AnalysisService) requireUser(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, common.Errorf("not authenticated, email is required: %w", common.ErrUnauthorized)
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("no account found for %s: %w", email, common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
