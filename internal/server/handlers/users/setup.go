package users

import (
	"users-api/internal/server/handler"
	userSvc "users-api/internal/users"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	users *userSvc.Service
}

func New(users *userSvc.Service) *Handler {
	return &Handler{users: users}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handler.Handle(h.list))
		r.Post("/", handler.Handle(h.create))
		r.Get("/{id}", handler.Handle(h.get))
		r.Put("/{id}", handler.Handle(h.update))
		r.Delete("/{id}", handler.Handle(h.delete))
	})
}
