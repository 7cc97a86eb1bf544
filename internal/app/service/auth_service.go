package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"code_mentor/internal/common"
	"code_mentor/internal/common/security"
	"code_mentor/internal/domain/model"
	"code_mentor/internal/domain/repository"

	"github.com/google/uuid"
)

// AuthService syncs users from the external OAuth identity provider.
// There is no password credential here: the provider already authenticated
// the caller, we only mirror {email, name} and issue a session token.
type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type SyncRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SyncResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Sync finds the user by email or creates one on first sign-in.
func (s *AuthService) Sync(ctx context.Context, req SyncRequest) (*SyncResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, common.Errorf("email is required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &model.User{
			ID:    uuid.NewString(),
			Email: email,
			Name:  strings.TrimSpace(req.Name),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &SyncResponse{User: user, Token: token}, nil
}
