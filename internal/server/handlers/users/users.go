package users

import (
	"errors"
	"net/http"

	"users-api/internal/server/handler"
	"users-api/internal/store/user"
	userSvc "users-api/internal/users"
)

func (h *Handler) list(r *http.Request) (*handler.Response, error) {
	profiles, err := h.users.List(r.Context())
	if err != nil {
		return nil, storeErr("listing users", err)
	}

	return &handler.Response{Status: http.StatusOK, Body: profiles}, nil
}

func (h *Handler) create(r *http.Request) (*handler.Response, error) {
	req, err := handler.DecodeBody[userRequest](r)
	if err != nil {
		return nil, err
	}

	created, err := h.users.Create(r.Context(), req.input())
	if err != nil {
		if errors.Is(err, userSvc.ErrInvalidEmail) {
			return nil, errInvalidEmail
		}
		return nil, storeErr("creating user", err)
	}

	return &handler.Response{Status: http.StatusCreated, Body: created}, nil
}

func (h *Handler) get(r *http.Request) (*handler.Response, error) {
	req, err := handler.DecodeRequest[*idRequest](r, "id")
	if err != nil {
		return nil, err
	}

	profile, err := h.users.Get(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrInvalidID) {
			return nil, errUserNotFound
		}
		return nil, storeErr("finding user", err)
	}

	return &handler.Response{Status: http.StatusOK, Body: profile}, nil
}

func (h *Handler) update(r *http.Request) (*handler.Response, error) {
	req, err := handler.DecodeRequest[*userRequest](r, "id")
	if err != nil {
		return nil, err
	}

	updated, err := h.users.Update(r.Context(), req.ID, req.input())
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return nil, errUserNotFound
		case errors.Is(err, user.ErrInvalidID):
			return nil, handler.ClientErr(http.StatusBadRequest, "error updating user, invalid id: "+req.ID)
		case errors.Is(err, userSvc.ErrInvalidEmail):
			return nil, errInvalidEmail
		}
		return nil, storeErr("updating user", err)
	}

	return &handler.Response{Status: http.StatusOK, Body: updated}, nil
}

func (h *Handler) delete(r *http.Request) (*handler.Response, error) {
	req, err := handler.DecodeRequest[*idRequest](r, "id")
	if err != nil {
		return nil, err
	}

	if err := h.users.Delete(r.Context(), req.ID); err != nil {
		return nil, storeErr("deleting user", err)
	}

	return &handler.Response{Status: http.StatusNoContent}, nil
}
