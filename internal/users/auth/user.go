// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the account and session entities, the credential check behind
login, and the server-side session registry that lets logout revoke a cookie
before it expires.

# Architecture

A session is a signed token carried in an http-only cookie. The token alone is
never trusted: its session id must also be present in the [SessionRepository].
*/
package auth

import (
	"strconv"
	"time"

	"github.com/taibuivan/catalog/internal/platform/sec"
)

// # Domain Entities

// User represents an account allowed to sign in.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Identity returns the session view of the account.
func (user *User) Identity() sec.Identity {
	return sec.Identity{
		UserID:   strconv.FormatInt(user.ID, 10),
		Username: user.Username,
		Role:     user.Role,
	}
}

// LoginSession is the result of a successful login.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	User      sec.Identity
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldUser     = "user"
	FieldMessage  = "message"
)
