package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/hasher"
	"users-api/internal/store/user"
	"users-api/sdk/crypto"
)

// recordingRepo wraps a MemoryStore and counts writes.
type recordingRepo struct {
	*user.MemoryStore
	writes int
	err    error
}

func (r *recordingRepo) Create(ctx context.Context, u user.New) (string, error) {
	r.writes++
	if r.err != nil {
		return "", r.err
	}
	return r.MemoryStore.Create(ctx, u)
}

func (r *recordingRepo) Replace(ctx context.Context, id string, u user.Update) error {
	r.writes++
	if r.err != nil {
		return r.err
	}
	return r.MemoryStore.Replace(ctx, id, u)
}

func newTestService(t *testing.T) (*Service, *recordingRepo) {
	t.Helper()
	d := hasher.NewDispatcher(2)
	d.Start()
	t.Cleanup(d.Stop)

	repo := &recordingRepo{MemoryStore: user.NewMemoryStore()}
	return NewService(repo, d), repo
}

var testInput = Input{Name: "test", Email: "thisisatest@gmail.com", Password: "test_password"}

func TestCreateThenGet(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "test", created.Name)
	assert.Equal(t, "thisisatest@gmail.com", created.Email)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, testInput.Password, stored.PasswordHash)
	match, err := crypto.VerifyPassword(testInput.Password, stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestCreate_InvalidEmailNeverWrites(t *testing.T) {
	svc, repo := newTestService(t)

	for _, email := range []string{"", "not-an-email", "a@", "@b.com"} {
		_, err := svc.Create(context.Background(), Input{Name: "test", Email: email, Password: "pw1"})
		assert.ErrorIs(t, err, ErrInvalidEmail, email)
	}
	assert.Zero(t, repo.writes)
}

func TestCreate_StoreErrorPropagates(t *testing.T) {
	svc, repo := newTestService(t)
	repo.err = user.ErrUnavailable

	_, err := svc.Create(context.Background(), testInput)
	assert.ErrorIs(t, err, user.ErrUnavailable)
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.Create(ctx, testInput)
	require.NoError(t, err)
	_, err = svc.Create(ctx, Input{Name: "second", Email: "second@example.com", Password: "pw2"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "test", all[0].Name)
	assert.Equal(t, "second", all[1].Name)
}

func TestGet_MissingAndMalformed(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = svc.Get(context.Background(), "malformed")
	assert.ErrorIs(t, err, user.ErrInvalidID)
}

func TestUpdate_RehashesEveryTime(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput)
	require.NoError(t, err)

	in := Input{Name: "test_updated", Email: "test_updated@gmail.com", Password: "test_password_updated"}

	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, Profile{ID: created.ID, Name: in.Name, Email: in.Email}, updated)
	first, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
	require.NoError(t, svc.Login(ctx, in.Name, in.Password))
}

func TestUpdate_Errors(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", testInput)
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = svc.Update(ctx, "malformed", testInput)
	assert.ErrorIs(t, err, user.ErrInvalidID)

	created, err := svc.Create(ctx, testInput)
	require.NoError(t, err)
	writes := repo.writes

	_, err = svc.Update(ctx, created.ID, Input{Name: "test", Email: "broken", Password: "pw1"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, writes, repo.writes)

	repo.err = errors.New("write conflict")
	_, err = svc.Update(ctx, created.ID, testInput)
	assert.EqualError(t, err, "write conflict")
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, created.ID))
	assert.NoError(t, svc.Delete(ctx, "malformed"))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testInput)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"success", "test", "test_password", nil},
		{"wrong password", "test", "nope", ErrInvalidCredentials},
		{"unknown user", "ghost", "test_password", user.ErrNotFound},
		{"lookup by email is not supported", "thisisatest@gmail.com", "test_password", user.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(ctx, tt.username, tt.password)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
