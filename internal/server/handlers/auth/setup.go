package auth

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
	r.Post("/login", handler.Handle(h.login))
}
