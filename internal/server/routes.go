package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authHandler "users-api/internal/server/handlers/auth"
	"users-api/internal/server/handlers/health"
	"users-api/internal/server/handlers/upload"
	usersHandler "users-api/internal/server/handlers/users"
)

func (s *Server) Setup() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	health.New(s.store).RegisterRoutes(r)

	usersHandler.New(s.users).RegisterRoutes(r)
	authHandler.New(s.users).RegisterRoutes(r)
	upload.New().RegisterRoutes(r)

	return r
}
