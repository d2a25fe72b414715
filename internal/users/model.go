package users

import "users-api/internal/store/user"

// Input is the full set of caller-supplied fields for create and update.
type Input struct {
	Name     string
	Email    string
	Password string
}

// Profile is the public projection of a user. It never carries the password.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func project(u user.User) Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email}
}
