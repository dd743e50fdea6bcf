// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/metrics"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

// Decision is the outcome of the request gate for a single request.
type Decision int

const (
	// Pass lets the request through to the router.
	Pass Decision = iota

	// Unauthenticated rejects a protected request that carries no session (401).
	Unauthenticated

	// Unauthorized rejects a write by a session without the admin role (403).
	Unauthorized
)

// String returns the metric label of the decision.
func (d Decision) String() string {
	switch d {
	case Unauthenticated:
		return "unauthenticated"
	case Unauthorized:
		return "unauthorized"
	default:
		return "pass"
	}
}

var (
	errUnauthenticated = apperr.Unauthorized("Unauthorized")
	errAdminRequired   = apperr.Forbidden("Forbidden: Admin access required")
)

// Decide applies the access policy to one request.
//
// # Rules
//  1. Paths under /api/auth always pass.
//  2. Paths under /api/v1 need a session; methods other than GET, HEAD and
//     OPTIONS also need the admin role.
//  3. Everything else passes.
func Decide(method, path string, identity *sec.Identity) Decision {
	if underPrefix(path, constants.AuthPathPrefix) {
		return Pass
	}

	if !underPrefix(path, constants.APIPathPrefix) {
		return Pass
	}

	if identity == nil {
		return Unauthenticated
	}

	if isMutating(method) && !identity.IsAdmin() {
		return Unauthorized
	}

	return Pass
}

// underPrefix matches whole path segments, so "/api/v10" is not under "/api/v1".
func underPrefix(path, prefix string) bool {
	rest, found := strings.CutPrefix(path, prefix)
	return found && (rest == "" || rest[0] == '/')
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

// SessionResolver turns a session cookie value into the identity it speaks for.
//
// It returns (nil, nil) for tokens that are empty, invalid, expired or revoked,
// and an error only when the session registry itself cannot be reached.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*sec.Identity, error)
}

// Gate is the single access-control point of the HTTP server.
//
// # Flow
//  1. Read the session cookie and resolve it through [SessionResolver].
//  2. Call [Decide] with the request method, path and resolved identity.
//  3. Reject with 401 or 403, or attach the identity to the context and continue.
//
// A registry failure fails closed on protected paths (503) and degrades to an
// anonymous request elsewhere.
func Gate(resolver SessionResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			// ── 1. Session Resolution ─────────────────────────────────────────
			var identity *sec.Identity
			if cookie, err := request.Cookie(cookieName); err == nil && cookie.Value != "" {
				resolved, err := resolver.ResolveSession(ctx, cookie.Value)
				if err != nil {
					ctxutil.GetLogger(ctx).WarnContext(ctx, "session_resolution_failed", slog.Any("error", err))
					if underPrefix(request.URL.Path, constants.APIPathPrefix) {
						respond.Error(writer, request, apperr.ServiceUnavailable("Session store unavailable"))
						return
					}
				}
				identity = resolved
			}

			// ── 2. Policy ─────────────────────────────────────────────────────
			decision := Decide(request.Method, request.URL.Path, identity)
			metrics.GateDecisionsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case Unauthenticated:
				respond.Error(writer, request, errUnauthenticated)
				return
			case Unauthorized:
				respond.Error(writer, request, errAdminRequired)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			if identity != nil {
				ctx = ctxutil.WithAuthUser(ctx, identity)
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
