// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "github.com/taibuivan/catalog/internal/platform/apperr"

// # Client Messages

const (
	MsgCredentialsRequired = "Username and password required"
	MsgLoggedOut           = "Logged out"
)

var (
	// ErrInvalidCredentials is the only answer to a failed login, whatever the cause.
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")

	// ErrNoSession is returned by the session endpoint for anonymous callers.
	ErrNoSession = apperr.Unauthorized("Unauthorized")
)
