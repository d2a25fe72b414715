package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"users-api/internal/store/user"
	userSvc "users-api/internal/users"
	"users-api/sdk/crypto"
)

// stubHasher treats "h:<pw>" as the hash of pw and rejects anything else as
// a corrupt hash.
type stubHasher struct{}

func (stubHasher) Hash(_ context.Context, pw string) (string, error) { return "h:" + pw, nil }
func (stubHasher) Verify(_ context.Context, pw, hash string) (bool, error) {
	if !strings.HasPrefix(hash, "h:") {
		return false, crypto.ErrInvalidHash
	}
	return hash == "h:"+pw, nil
}

type lookupRepo struct {
	user.Repository
	u   user.User
	err error
}

func (l lookupRepo) FindByName(context.Context, string) (user.User, error) { return l.u, l.err }

func postLogin(t *testing.T, repo user.Repository, form url.Values) (int, string) {
	t.Helper()
	r := chi.NewRouter()
	New(userSvc.NewService(repo, stubHasher{})).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, body.Message
}

func TestLogin(t *testing.T) {
	alice := user.User{ID: "1", Name: "alice", PasswordHash: "h:secret"}
	creds := url.Values{"username": {"alice"}, "password": {"secret"}}

	tests := []struct {
		name        string
		repo        lookupRepo
		form        url.Values
		wantStatus  int
		wantMessage string
	}{
		{"success", lookupRepo{u: alice}, creds, http.StatusCreated, "user alice successfully logged in!"},
		{"wrong password", lookupRepo{u: alice}, url.Values{"username": {"alice"}, "password": {"nope"}}, http.StatusBadRequest, "invalid password"},
		{"unknown user", lookupRepo{err: user.ErrNotFound}, creds, http.StatusNotFound, "user not found"},
		{"missing password", lookupRepo{u: alice}, url.Values{"username": {"alice"}}, http.StatusBadRequest, "missing form field: password"},
		{"unavailable", lookupRepo{err: fmt.Errorf("find: %w: %w", user.ErrUnavailable, errors.New("timeout"))}, creds, http.StatusServiceUnavailable, ""},
		{"store failure", lookupRepo{err: fmt.Errorf("select user: %w: %w", user.ErrStore, errors.New("boom"))}, creds, http.StatusInternalServerError, "store error: select user: user: store error: boom"},
		{"corrupt stored hash", lookupRepo{u: user.User{Name: "alice", PasswordHash: "plain"}}, creds, http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := postLogin(t, tt.repo, tt.form)
			if code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tt.wantStatus, code, msg)
			}
			if tt.wantMessage != "" && msg != tt.wantMessage {
				t.Fatalf("expected message %q, got %q", tt.wantMessage, msg)
			}
		})
	}
}
