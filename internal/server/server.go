package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"users-api/internal/config"
	"users-api/internal/hasher"
	"users-api/internal/logging"
	"users-api/internal/store"
	"users-api/internal/users"
)

type Server struct {
	cfg    *config.Config
	store  *store.Registry
	hasher *hasher.Dispatcher
	users  *users.Service
}

// New wires a Server around an already opened store and a started hasher.
func New(cfg *config.Config, reg *store.Registry, h *hasher.Dispatcher) *Server {
	return &Server{
		cfg:    cfg,
		store:  reg,
		hasher: h,
		users:  users.NewService(reg.Users, h),
	}
}

// NewServer opens the configured store, starts the hasher pool and returns an
// http.Server together with a cleanup that stops the pool and closes the
// store. Call cleanup only after Shutdown has returned, so requests still
// draining keep both.
func NewServer(ctx context.Context, cfg *config.Config, log logging.Logger) (*http.Server, func(), error) {
	reg, err := store.Open(ctx, cfg, log.With("component", "store"))
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	h := hasher.NewDispatcher(cfg.HasherWorkers)
	h.Start()

	s := New(cfg, reg, h)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Setup(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	cleanup := func() {
		h.Stop()
		if err := reg.Close(); err != nil {
			log.Error(context.Background(), "close store", "error", err)
		}
	}

	return server, cleanup, nil
}
