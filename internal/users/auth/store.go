// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByUsername returns the account with the given username (exact match).

		Returns:
		  - *User: Hydrated entity
		  - error: dberr.ErrNotFound when absent, or database failures
	*/
	FindByUsername(ctx context.Context, username string) (*User, error)

	/*
		Upsert creates the account, or replaces the password hash and role of an
		existing account with the same username. ID and CreatedAt are filled in.
	*/
	Upsert(ctx context.Context, user *User) error
}

// # Session Registry

// SessionRepository tracks which session ids are still live.
//
// Entries expire on their own after the TTL given to Create.
type SessionRepository interface {

	// Create registers a session id for userID.
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error

	// Exists reports whether the session id is registered and unexpired.
	Exists(ctx context.Context, sessionID string) (bool, error)

	// Revoke removes the session id. Revoking an unknown id is not an error.
	Revoke(ctx context.Context, sessionID string) error
}
