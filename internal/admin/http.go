// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/videoventa-mx/videoventa/internal/platform/constants"
	"github.com/videoventa-mx/videoventa/internal/platform/ctxutil"
	requestutil "github.com/videoventa-mx/videoventa/internal/platform/request"
	"github.com/videoventa-mx/videoventa/internal/platform/respond"
)

// Handler exposes the authentication endpoints.
type Handler struct {
	service *Service

	// secureCookies toggles the Secure attribute; off in local development
	// where the admin panel runs over plain HTTP.
	secureCookies bool
}

func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{
		service:       service,
		secureCookies: secureCookies,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Get("/check-auth", handler.checkAuth)
	router.Post("/logout", handler.logout)
}

// login handles POST /api/admin/login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(request.Context(), input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.sessionCookie(token, int(constants.AdminSessionTTL.Seconds())))
	respond.OK(writer, AuthStatus{IsAuthenticated: true})
}

// checkAuth handles GET /api/admin/check-auth.
//
// It always answers 200 with a boolean. The admin panel polls this on load;
// an unauthenticated visitor is a normal answer, not an error.
func (handler *Handler) checkAuth(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, AuthStatus{IsAuthenticated: ctxutil.IsAdmin(request.Context())})
}

// logout handles POST /api/admin/logout. Idempotent: logging out without a
// session still succeeds.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.SessionCookie(request, constants.AdminSessionCookieName)
	if token != "" {
		if err := handler.service.Logout(request.Context(), token); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	// Expire the cookie regardless of whether a session was found.
	http.SetCookie(writer, handler.sessionCookie("", -1))
	respond.OK(writer, AuthStatus{IsAuthenticated: false})
}

func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.AdminSessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
