package service

import (
	"context"
	"testing"
	"time"

	"code_mentor/internal/common/security"
	"code_mentor/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()
}

func TestSyncCreatesUserOnFirstSignIn(t *testing.T) {
	initTestJWT(t)
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	resp, err := svc.Sync(context.Background(), SyncRequest{Email: "new@example.com", Name: "New Dev"})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, "New Dev", resp.User.Name)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, exists := repo.users["new@example.com"]
	assert.True(t, exists)
}

func TestSyncReturnsExistingUser(t *testing.T) {
	initTestJWT(t)
	existing := seededUser()
	svc := NewAuthService(newFakeUserRepo(existing))

	resp, err := svc.Sync(context.Background(), SyncRequest{Email: existing.Email})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)
}

func TestSyncRequiresEmail(t *testing.T) {
	initTestJWT(t)
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Sync(context.Background(), SyncRequest{Name: "Anonymous"})
	require.Error(t, err)
}
