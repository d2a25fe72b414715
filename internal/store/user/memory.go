package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process memory. It backs local development
// (STORE_DRIVER=memory) and tests; contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	users map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) List(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id])
	}
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, u New) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = User{ID: id, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash}
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (User, error) {
	key, err := parseUUID(id)
	if err != nil {
		return User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[key]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) FindByName(_ context.Context, name string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if u := s.users[id]; u.Name == name {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *MemoryStore) Replace(_ context.Context, id string, upd Update) error {
	key, err := parseUUID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[key]
	if !ok {
		return ErrNotFound
	}
	u.Name = upd.Name
	u.Email = upd.Email
	u.PasswordHash = upd.PasswordHash
	s.users[key] = u
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	key, err := parseUUID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[key]; !ok {
		return nil
	}
	delete(s.users, key)
	for i, v := range s.order {
		if v == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// parseUUID normalises id to the canonical lowercase form used as map key.
func parseUUID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}
