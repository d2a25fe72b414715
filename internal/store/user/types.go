package user

// User is a stored identity record. PasswordHash is always an Argon2id hash;
// nothing in this package accepts or returns a plaintext password.
type User struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// New holds the fields written on creation. The ID is assigned by the backend.
type New struct {
	Name         string
	Email        string
	PasswordHash string
}

// Update replaces every mutable field of an existing record.
type Update struct {
	Name         string
	Email        string
	PasswordHash string
}
