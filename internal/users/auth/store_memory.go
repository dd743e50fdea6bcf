// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"
)

// MemorySessionRepository implements [SessionRepository] in process memory.
//
// It serves single-instance deployments without Redis; sessions do not
// survive a restart.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewMemorySessionRepository creates an empty in-process session registry.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]time.Time),
	}
}

// Create registers the session and sweeps expired entries.
func (repository *MemorySessionRepository) Create(_ context.Context, sessionID, _ string, ttl time.Duration) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := time.Now()
	for id, expiresAt := range repository.sessions {
		if !now.Before(expiresAt) {
			delete(repository.sessions, id)
		}
	}

	repository.sessions[sessionID] = now.Add(ttl)
	return nil
}

// Exists reports whether the session is registered and unexpired.
func (repository *MemorySessionRepository) Exists(_ context.Context, sessionID string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	expiresAt, found := repository.sessions[sessionID]
	return found && time.Now().Before(expiresAt), nil
}

// Revoke forgets the session.
func (repository *MemorySessionRepository) Revoke(_ context.Context, sessionID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.sessions, sessionID)
	return nil
}
