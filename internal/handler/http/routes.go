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

	router.Get("/", h.home)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register/", h.register)
		r.Post("/auth/login/", h.login)
		r.Post("/logout/", h.logout)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me/", h.me)
		r.Patch("/users/update/me", h.updateMe)
		r.Delete("/users/delete/me", h.deleteMe)
		r.Get("/salary/me/", h.salaryMe)
	})

	return router
}
