// Package users implements the user resource: CRUD over the identity store
// and password login. It has no knowledge of HTTP; callers map the returned
// errors to their own transport.
package users

import (
	"context"
	"errors"
	"fmt"

	"users-api/internal/emailcheck"
	"users-api/internal/store/user"
)

var (
	ErrInvalidEmail       = emailcheck.ErrInvalid
	ErrInvalidCredentials = errors.New("invalid password")
)

// PasswordHasher hashes and verifies passwords. *hasher.Dispatcher satisfies it.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, storedHash string) (bool, error)
}

type Service struct {
	users  user.Repository
	hasher PasswordHasher
}

func NewService(users user.Repository, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// List returns every stored user. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Profile, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(all))
	for _, u := range all {
		out = append(out, project(u))
	}
	return out, nil
}

// Create validates the email, hashes the password, inserts the record and
// returns it as re-read from the store.
func (s *Service) Create(ctx context.Context, in Input) (Profile, error) {
	if err := emailcheck.Validate(in.Email); err != nil {
		return Profile{}, ErrInvalidEmail
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, user.New{Name: in.Name, Email: in.Email, PasswordHash: hash})
	if err != nil {
		return Profile{}, err
	}

	created, err := s.users.FindByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return project(created), nil
}

// Get returns the user with the given id. A malformed id yields
// user.ErrInvalidID and a missing record user.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return project(u), nil
}

// Update replaces name, email and password of an existing user. The password
// is rehashed on every call.
func (s *Service) Update(ctx context.Context, id string, in Input) (Profile, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return Profile{}, err
	}

	if err := emailcheck.Validate(in.Email); err != nil {
		return Profile{}, ErrInvalidEmail
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Replace(ctx, id, user.Update{Name: in.Name, Email: in.Email, PasswordHash: hash}); err != nil {
		return Profile{}, err
	}

	updated, err := s.users.FindByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return project(updated), nil
}

// Delete removes the user with the given id. A missing record or an id the
// store cannot parse is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, user.ErrInvalidID) {
		return nil
	}
	return err
}

// Login checks password against the stored hash of the user named username.
func (s *Service) Login(ctx context.Context, username, password string) error {
	u, err := s.users.FindByName(ctx, username)
	if err != nil {
		return err
	}

	match, err := s.hasher.Verify(ctx, password, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return ErrInvalidCredentials
	}
	return nil
}
