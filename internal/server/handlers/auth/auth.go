package auth

import (
	"errors"
	"fmt"
	"net/http"

	"users-api/internal/server/handler"
	"users-api/internal/store/user"
	userSvc "users-api/internal/users"
)

func (h *Handler) login(r *http.Request) (*handler.Response, error) {
	req, err := handler.DecodeForm[*loginRequest](r, "username", "password")
	if err != nil {
		return nil, err
	}

	if err := h.users.Login(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return nil, handler.ClientErr(http.StatusNotFound, "user not found")
		case errors.Is(err, userSvc.ErrInvalidCredentials):
			return nil, handler.ClientErr(http.StatusBadRequest, "invalid password")
		case errors.Is(err, user.ErrUnavailable):
			return nil, handler.ServerErr(http.StatusServiceUnavailable, "connection error: %v", err)
		case errors.Is(err, user.ErrStore):
			return nil, handler.ServerErr(http.StatusInternalServerError, "store error: %v", err)
		}
		return nil, err
	}

	return &handler.Response{
		Status: http.StatusCreated,
		Body:   loginResponse{Message: fmt.Sprintf("user %s successfully logged in!", req.Username)},
	}, nil
}
