package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.issueSession(w, r, user) {
		return
	}

	logger.FromRequest(r).Debug().Str("id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, "Signed up successfully", http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.issueSession(w, r, user) {
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) google(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleAuthRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.GoogleSignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.issueSession(w, r, user) {
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// signOut clears the session cookie. It never fails.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.clearAccessCookie(w)
	utils.WriteJSON(w, "User has been signed out", http.StatusOK)
}

// issueSession creates a token for user and sets it as the session cookie.
// It reports false after writing an error response.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	h.setAccessCookie(w, token.String())
	return true
}
