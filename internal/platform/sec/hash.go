// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash without truncation.
var ErrPasswordTooLong = fmt.Errorf("sec: password exceeds %d bytes", constants.PasswordMaxBytes)

// HashPassword hashes an account password for storage in users.account.
func HashPassword(password string) (string, error) {
	if len(password) > constants.PasswordMaxBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), constants.PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether password matches a stored hash.
// Oversized passwords and malformed hashes never match.
func CheckPasswordHash(password, hash string) bool {
	if len(password) > constants.PasswordMaxBytes {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
