package users

import (
	"errors"
	"net/http"

	"users-api/internal/server/handler"
	"users-api/internal/store/user"
	userSvc "users-api/internal/users"
)

// userRequest is the body of POST /users and PUT /users/{id}.
type userRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"     validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=3,max=80"`
}

func (r *userRequest) SetParam(field, value string) error {
	if field == "id" {
		r.ID = value
	}
	return nil
}

func (r *userRequest) input() userSvc.Input {
	return userSvc.Input{Name: r.Name, Email: r.Email, Password: r.Password}
}

type idRequest struct {
	ID string `validate:"required"`
}

func (r *idRequest) SetParam(field, value string) error {
	if field == "id" {
		r.ID = value
	}
	return nil
}

var (
	errUserNotFound = handler.ClientErr(http.StatusNotFound, "user not found")
	errInvalidEmail = handler.ClientErr(http.StatusBadRequest, "invalid email format")
)

// storeErr maps a failed store call onto 503 for connectivity problems and
// 500 for other driver failures, keeping the cause in the message. Anything
// else is returned unchanged and rendered as an internal error.
func storeErr(action string, err error) error {
	switch {
	case errors.Is(err, user.ErrUnavailable):
		return handler.ServerErr(http.StatusServiceUnavailable, "connection error: %v", err)
	case errors.Is(err, user.ErrStore):
		return handler.ServerErr(http.StatusInternalServerError, "error %s in the database: %v", action, err)
	}
	return err
}
