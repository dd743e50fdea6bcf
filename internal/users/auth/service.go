// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/metrics"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/pkg/uuid"
)

// # Contracts & Types

// CredentialVerifier checks a username and password pair.
//
// It returns (nil, nil) when the pair does not match any account, and an
// error only when the check itself could not be carried out.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*User, error)
}

// TokenProvider signs and verifies session tokens.
type TokenProvider interface {
	GenerateSessionToken(identity sec.Identity, sessionID string, timeToLive time.Duration) (string, time.Time, error)
	VerifyToken(tokenString string) (*sec.SessionClaims, error)
}

// # Credential Verification

// PasswordVerifier is the default [CredentialVerifier]: an exact username
// lookup followed by a bcrypt comparison.
type PasswordVerifier struct {
	users UserRepository
}

// NewPasswordVerifier creates a verifier backed by the account store.
func NewPasswordVerifier(users UserRepository) *PasswordVerifier {
	return &PasswordVerifier{users: users}
}

// Verify implements [CredentialVerifier].
func (verifier *PasswordVerifier) Verify(ctx context.Context, username, password string) (*User, error) {
	user, err := verifier.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth: find user: %w", err)
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil
	}

	return user, nil
}

// # Service

// Service implements login, logout and session resolution.
type Service struct {
	verifier   CredentialVerifier
	sessions   SessionRepository
	tokens     TokenProvider
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	verifier CredentialVerifier,
	sessions SessionRepository,
	tokens TokenProvider,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		verifier:   verifier,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

/*
Login verifies the credentials and opens a session.

Description: No match is not an error; the result is (nil, nil) and the caller
answers with a generic "Invalid credentials". On success a session id is
registered for the session TTL and a signed token bound to it is returned.

Returns:
  - *LoginSession: Signed token, expiry and the session identity
  - error: Verifier, registry or signing failures
*/
func (service *Service) Login(ctx context.Context, username, password string) (*LoginSession, error) {
	user, err := service.verifier.Verify(ctx, username, password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if user == nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		service.logger.WarnContext(ctx, "login_failed", slog.String("username", username))
		return nil, nil
	}

	identity := user.Identity()
	sessionID := uuid.New()

	if err := service.sessions.Create(ctx, sessionID, identity.UserID, service.sessionTTL); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("auth: register session: %w", err)
	}

	token, expiresAt, err := service.tokens.GenerateSessionToken(identity, sessionID, service.sessionTTL)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("auth: sign session: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	service.logger.InfoContext(ctx, "login_succeeded",
		slog.String("user_id", identity.UserID),
		slog.String("role", string(identity.Role)),
	)

	return &LoginSession{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      identity,
	}, nil
}

/*
Logout revokes the session behind token.

Description: Tokens that do not verify are ignored, since they cannot open a
session anyway. Only registry failures are reported.
*/
func (service *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil
	}

	if err := service.sessions.Revoke(ctx, claims.ID); err != nil {
		return fmt.Errorf("auth: revoke session: %w", err)
	}

	service.logger.InfoContext(ctx, "logout_succeeded", slog.String("user_id", claims.UserID))
	return nil
}

/*
ResolveSession returns the identity a session token speaks for.

Description: Empty, malformed, forged, expired and revoked tokens all resolve
to (nil, nil). An error means the registry could not be consulted.
*/
func (service *Service) ResolveSession(ctx context.Context, token string) (*sec.Identity, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		service.logger.DebugContext(ctx, "session_token_rejected", slog.Any("error", err))
		return nil, nil
	}

	// Session ids are always minted by pkg/uuid.
	if !uuid.Valid(claims.ID) {
		return nil, nil
	}

	live, err := service.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("auth: check session: %w", err)
	}
	if !live {
		return nil, nil
	}

	return claims.Identity(), nil
}
