// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the session endpoints under /api/auth.
type Handler struct {
	authService  *Service
	secureCookie bool
}

// NewHandler constructs a new [Handler]. secureCookie marks the session cookie
// Secure, which production deployments behind TLS require.
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{authService: service, secureCookie: secureCookie}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /login   : Verifies credentials and sets the session cookie.
//   - POST /logout  : Revokes the session and clears the cookie.
//   - GET  /session : Returns the current session user.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.session)

	return router
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Login authenticates a user and opens a session.

POST /api/auth/login

Response:
  - 200: {"user": {id, username, role}} with the session cookie set
  - 400: Missing username or password
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	check := (&validate.Validator{}).
		Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password)
	if check.HasErrors() {
		respond.Error(writer, request, apperr.ValidationError(MsgCredentialsRequired, check.Details()...))
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if session == nil {
		respond.Error(writer, request, ErrInvalidCredentials)
		return
	}

	http.SetCookie(writer, handler.sessionCookie(session.Token, int(constants.SessionTTL.Seconds())))

	respond.OK(writer, map[string]any{
		FieldUser: session.User,
	})
}

/*
Logout terminates the current session.

POST /api/auth/logout

Description: The cookie is always cleared, whether or not it carried a live
session.

Response:
  - 200: {"message": "Logged out"}
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		if err := handler.authService.Logout(request.Context(), cookie.Value); err != nil {
			ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "logout_revoke_failed", slog.Any("error", err))
		}
	}

	http.SetCookie(writer, handler.sessionCookie("", -1))

	respond.OK(writer, map[string]string{
		FieldMessage: MsgLoggedOut,
	})
}

/*
Session returns the user of the session resolved by the request gate.

GET /api/auth/session

Response:
  - 200: {"user": {id, username, role}}
  - 401: No live session
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	identity := requestutil.Identity(request)
	if identity == nil {
		respond.Error(writer, request, ErrNoSession)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser: identity,
	})
}

// sessionCookie builds the session cookie. A negative maxAge deletes it.
func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
