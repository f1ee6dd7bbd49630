package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(cors.Handler(h.corsOptions()))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(withGZipBody)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)

		r.Get("/api/v1/questions", h.getAllQuestions)
		r.Get("/api/v1/questions/{id}", h.getQuestion)

		r.Get("/api/v1/comments/question/{questionId}", h.getCommentsByQuestion)
		r.Delete("/api/v1/comments/{id}", h.deleteComment)

		r.Get("/api/v1/health", h.health)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/auth/me", h.me)

		r.Post("/api/v1/questions", h.createQuestion)
		r.Put("/api/v1/questions/{id}", h.updateQuestion)
		r.Delete("/api/v1/questions/{id}", h.deleteQuestion)

		r.Post("/api/v1/comments", h.createComment)
	})

	return router
}

// corsOptions allows every origin unless SERVER_ALLOWED_ORIGINS narrows it.
func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
