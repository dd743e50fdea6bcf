// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/middleware"
	"github.com/taibuivan/catalog/internal/users/auth"
)

// newRouter mounts the auth routes behind the request gate, as the server does.
func newRouter(t *testing.T) http.Handler {
	t.Helper()

	service := newService(t, auth.NewMemorySessionRepository())

	router := chi.NewRouter()
	router.Use(middleware.Gate(service, "session"))
	router.Mount("/api/auth", auth.NewHandler(service, false).Routes())
	return router
}

func postJSON(router http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", `{"username":"ghost","password":"ghost"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest, "Username and password required"},
		{"whitespace password", `{"username":"admin","password":"   "}`, http.StatusUnauthorized, "Invalid credentials"},
		{"empty body", `{}`, http.StatusBadRequest, "Username and password required"},
		{"malformed json", `{"username":`, http.StatusBadRequest, "Invalid JSON payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(newRouter(t), "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantError, decode(t, recorder)["error"])
			assert.Empty(t, recorder.Result().Cookies())
		})
	}
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	recorder := postJSON(newRouter(t), "/api/auth/login", `{"username":"user","password":"user"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := sessionCookie(t, recorder)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.False(t, cookie.Secure)

	user, ok := decode(t, recorder)["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", user["username"])
	assert.Equal(t, "user", user["role"])
	assert.NotEmpty(t, user["id"])
}

func TestSessionAndLogout(t *testing.T) {
	router := newRouter(t)

	login := postJSON(router, "/api/auth/login", `{"username":"admin","password":"admin"}`)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	getSession := func() *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
		request.AddCookie(cookie)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	// 1. The cookie resolves to the admin
	recorder := getSession()
	require.Equal(t, http.StatusOK, recorder.Code)
	user := decode(t, recorder)["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])

	// 2. Logout clears the cookie and reports success
	logout := postJSON(router, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, logout.Code)
	assert.Equal(t, "Logged out", decode(t, logout)["message"])
	cleared := sessionCookie(t, logout)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// 3. A replayed cookie is no longer a session
	assert.Equal(t, http.StatusUnauthorized, getSession().Code)
}

func TestLogout_WithoutCookie(t *testing.T) {
	recorder := postJSON(newRouter(t), "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Logged out", decode(t, recorder)["message"])
}

func TestSession_Anonymous(t *testing.T) {
	recorder := httptest.NewRecorder()
	newRouter(t).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
