package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreatePostRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

// getPosts is public: it serves the listing with filters taken from the
// query string.
func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.PostService.ListPosts(r.Context(), postFilter(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page.Posts == nil {
		page.Posts = []models.Post{}
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// deletePost ignores the {userId} path segment: ownership is checked against
// the stored post.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), caller, chi.URLParam(r, "postId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, "The post has been deleted successfully", http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.PostUpdate
	if err = decodeBody(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), caller, chi.URLParam(r, "postId"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
