package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// public reader surface
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/articles/{slug}", h.articleDetail)
	})

	// admin surface: every request gets a session, every state-changing
	// request must pass the CSRF check before any business logic runs
	router.Route("/admin", func(r chi.Router) {
		r.Use(h.withSession)
		r.Use(h.verifyCSRF)

		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/", h.dashboard)
			r.Get("/articles/create", h.createArticleForm)
			r.Post("/articles/create", h.createArticle)
			r.Post("/articles/{slug}/publish", h.publishArticle)
			r.Post("/articles/{slug}/unpublish", h.unpublishArticle)
			r.Post("/articles/{slug}/delete", h.deleteArticle)
		})
	})

	return router
}
