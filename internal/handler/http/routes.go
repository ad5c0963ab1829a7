package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withSession)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/logout", h.logout)

		r.Get("/user", h.currentUser)
		r.Post("/user", h.updateProfile)

		r.Get("/sessions", h.listSessions)
		r.Post("/sessions/revoke", h.revokeSession)

		r.Get("/todos", h.listTodos)
		r.Post("/todos", h.createTodo)
		r.Post("/todos/delete", h.deleteTodo)
		r.Post("/todos/delete-all", h.deleteAllTodos)

		r.Get("/version", h.buildInfo)
	})

	return router
}
