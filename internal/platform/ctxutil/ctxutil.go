// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/ctxkey"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// WithClientIP returns a new context carrying the resolved client address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyClientIP, ip)
}

// GetClientIP retrieves the client address. Returns an empty string if not resolved.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(ctxkey.KeyClientIP).(string)
	return ip
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// authSlot records the identity for middleware that runs outside the gate.
type authSlot struct {
	identity *sec.Identity
}

// WithAuthSlot opens a slot that later [WithAuthUser] calls fill in, so that
// outer middleware can read the identity after the handler chain returns.
func WithAuthSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAuthSlot, &authSlot{})
}

// WithAuthUser returns a new context with the session identity attached.
func WithAuthUser(ctx context.Context, user *sec.Identity) context.Context {
	if slot, ok := ctx.Value(ctxkey.KeyAuthSlot).(*authSlot); ok {
		slot.identity = user
	}
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.Identity] from the [context.Context], falling
// back to an open slot. Returns nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.Identity {
	if identity, ok := ctx.Value(ctxkey.KeyUser).(*sec.Identity); ok {
		return identity
	}
	if slot, ok := ctx.Value(ctxkey.KeyAuthSlot).(*authSlot); ok {
		return slot.identity
	}
	return nil
}
