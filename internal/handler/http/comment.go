package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateCommentRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewCommentResponse{NewComment: comment}, http.StatusCreated)
}

func (h *Handler) getPostComments(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.GetPostComments(r.Context(), caller, chi.URLParam(r, "postId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if comments == nil {
		comments = []models.CommentView{}
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// updateLikeForComments toggles the like of ?userId on ?commentId.
func (h *Handler) updateLikeForComments(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	comment, err := h.services.CommentService.ToggleLike(r.Context(), caller, q.Get("commentId"), q.Get("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) editComment(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.EditCommentRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.EditComment(r.Context(), caller, chi.URLParam(r, "commentId"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.DeleteComment(r.Context(), caller, chi.URLParam(r, "commentId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Comment deleted successfully"}, http.StatusOK)
}
