package health

import (
	"net/http"

	"users-api/internal/server/handler"
	"users-api/internal/store"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store *store.Registry
}

func New(reg *store.Registry) *Handler {
	return &Handler{store: reg}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", handler.Handle(h.health))
}

func (h *Handler) health(r *http.Request) (*handler.Response, error) {
	return &handler.Response{
		Status: http.StatusOK,
		Body:   map[string]any{"store": h.store.Health()},
	}, nil
}
