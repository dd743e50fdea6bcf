// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/auth"
)

const testSecret = "test-secret-test-secret-test-secret"

// memoryUsers is an in-memory [auth.UserRepository].
type memoryUsers struct {
	byName map[string]*auth.User
	err    error
}

func (repository *memoryUsers) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if repository.err != nil {
		return nil, repository.err
	}
	user, found := repository.byName[username]
	if !found {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repository *memoryUsers) Upsert(_ context.Context, user *auth.User) error {
	user.ID = int64(len(repository.byName) + 1)
	repository.byName[user.Username] = user
	return nil
}

// failingSessions is a registry that is always unreachable.
type failingSessions struct{}

var errRegistryDown = errors.New("registry down")

func (failingSessions) Create(context.Context, string, string, time.Duration) error {
	return errRegistryDown
}

func (failingSessions) Exists(context.Context, string) (bool, error) { return false, errRegistryDown }

func (failingSessions) Revoke(context.Context, string) error { return errRegistryDown }

// newUsers seeds the two standard accounts.
func newUsers(t *testing.T) *memoryUsers {
	t.Helper()

	users := &memoryUsers{byName: map[string]*auth.User{}}
	for _, account := range []struct {
		name string
		role sec.UserRole
	}{
		{"user", sec.RoleUser},
		{"admin", sec.RoleAdmin},
	} {
		hash, err := sec.HashPassword(account.name)
		require.NoError(t, err)
		require.NoError(t, users.Upsert(context.Background(), &auth.User{
			Username:     account.name,
			PasswordHash: hash,
			Role:         account.role,
		}))
	}
	return users
}

func newTokens(t *testing.T) *sec.TokenService {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, constants.AuthIssuer)
	require.NoError(t, err)
	return tokens
}

func newService(t *testing.T, sessions auth.SessionRepository) *auth.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(
		auth.NewPasswordVerifier(newUsers(t)),
		sessions,
		newTokens(t),
		constants.SessionTTL,
		logger,
	)
}
