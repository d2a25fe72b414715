package user

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps users in the users table created by db/migrations.
// Ids are UUIDs generated by the database.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]User, error) {
	users := []User{}
	err := s.db.SelectContext(ctx, &users,
		"SELECT id, name, email, password_hash FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, pgErr("select users", err)
	}
	return users, nil
}

func (s *PostgresStore) Create(ctx context.Context, u New) (string, error) {
	var id string
	err := s.db.GetContext(ctx, &id,
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		u.Name, u.Email, u.PasswordHash)
	if err != nil {
		return "", pgErr("insert user", err)
	}
	return id, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return User{}, ErrInvalidID
	}

	var u User
	err := s.db.GetContext(ctx, &u,
		"SELECT id, name, email, password_hash FROM users WHERE id = $1", id)
	if err != nil {
		return User{}, pgErr("select user", err)
	}
	return u, nil
}

func (s *PostgresStore) FindByName(ctx context.Context, name string) (User, error) {
	var u User
	err := s.db.GetContext(ctx, &u,
		"SELECT id, name, email, password_hash FROM users WHERE name = $1 ORDER BY created_at, id LIMIT 1", name)
	if err != nil {
		return User{}, pgErr("select user", err)
	}
	return u, nil
}

func (s *PostgresStore) Replace(ctx context.Context, id string, u Update) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = $1, email = $2, password_hash = $3 WHERE id = $4",
		u.Name, u.Email, u.PasswordHash, id)
	if err != nil {
		return pgErr("update user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return pgErr("update user", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id); err != nil {
		return pgErr("delete user", err)
	}
	return nil
}

func pgErr(op string, err error) error {
	var (
		connErr *pgconn.ConnectError
		netErr  net.Error
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.As(err, &connErr), errors.As(err, &netErr), pgconn.Timeout(err),
		errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
	}
}
