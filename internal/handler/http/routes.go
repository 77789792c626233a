package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/google", h.google)
		r.Post("/api/auth/signout", h.signOut)

		r.Get("/api/post/getPosts", h.getPosts)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/user/update/{userId}", h.updateUser)
		r.Delete("/api/user/delete/{userId}", h.deleteUser)
		r.Get("/api/user/getUsers", h.getUsers)

		r.Post("/api/post/create", h.createPost)
		r.Delete("/api/post/deletePost/{postId}/{userId}", h.deletePost)
		r.Put("/api/post/updatePost/{postId}/{userId}", h.updatePost)

		r.Post("/api/comment/create", h.createComment)
		r.Get("/api/comment/post/{postId}", h.getPostComments)
		r.Patch("/api/comment/updateLikeForComments", h.updateLikeForComments)
		r.Patch("/api/comment/editComment/{commentId}", h.editComment)
		r.Patch("/api/comment/deleteComment/{commentId}", h.deleteComment)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
