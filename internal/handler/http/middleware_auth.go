package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It resolves the caller with authenticate and, on success, stores the
// caller's [models.Claims] in the request context before delegating to the
// next handler. On failure it writes 401 "Unauthorized Access" and returns
// without calling next.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
	})
}

// authenticate reads the access_token cookie and verifies it. Every failure
// wraps [service.ErrUnauthorizedAccess].
func (h *Handler) authenticate(r *http.Request) (models.Claims, error) {
	cookie, err := r.Cookie(accessTokenCookie)
	if err != nil || cookie.Value == "" {
		return models.Claims{}, fmt.Errorf("%w: %w", service.ErrUnauthorizedAccess, ErrNoAccessToken)
	}

	claims, err := h.services.AuthService.ParseToken(r.Context(), cookie.Value)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", service.ErrUnauthorizedAccess, err)
	}

	return claims, nil
}

// callerFrom returns the claims attached by auth.
func callerFrom(r *http.Request) (models.Claims, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return models.Claims{}, service.ErrUnauthorizedAccess
	}
	return claims, nil
}
