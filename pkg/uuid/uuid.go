// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the opaque identifiers used for request correlation and
session handles.

Values are UUIDv7 so that log lines and registry keys sort by creation time.
When the time-ordered generator fails, a random v4 value is returned instead;
neither caller relies on ordering for correctness.
*/
package uuid

import "github.com/google/uuid"

// New returns a new identifier in canonical string form.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
