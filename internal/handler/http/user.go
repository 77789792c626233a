package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), caller, chi.URLParam(r, "userId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), caller, chi.URLParam(r, "userId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted successfully"}, http.StatusOK)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), caller, listParams(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page.Users == nil {
		page.Users = []models.User{}
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
