// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, token signing) from
// the domain logic. The session cookie carries a token signed here, so the
// client cannot alter the identity or role it asserts.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum accepted HMAC key size in bytes.
const MinSecretLength = 32

// ErrWeakSecret is returned when the signing secret is shorter than [MinSecretLength].
var ErrWeakSecret = errors.New("sec: session secret must be at least 32 bytes")

// SessionClaims represents the payload embedded inside a session token.
//
// The registered ID claim (jti) carries the server-side session id, so a
// token can be revoked by deleting its session.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the cookie small.
	UserID   string `json:"uid"`
	Username string `json:"unm"`
	Role     string `json:"rol"`
}

// Identity returns the user the claims assert.
func (claims *SessionClaims) Identity() *Identity {
	return &Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     UserRole(claims.Role),
	}
}

// TokenService signs and verifies session tokens using HS256.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService keyed by secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateSessionToken signs a token for identity bound to sessionID.
// It returns the token together with its absolute expiry.
func (service *TokenService) GenerateSessionToken(identity Identity, sessionID string, timeToLive time.Duration) (string, time.Time, error) {
	currentTime := time.Now()
	expiresAt := currentTime.Add(timeToLive)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   identity.UserID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     string(identity.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// VerifyToken checks the signature, issuer and validity window of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		return service.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	if claims.ID == "" || claims.UserID == "" || !UserRole(claims.Role).Valid() {
		return nil, fmt.Errorf("sec: incomplete token claims")
	}

	return claims, nil
}
