package auth

// loginRequest is read from the form fields username and password.
type loginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (r *loginRequest) SetForm(field, value string) error {
	switch field {
	case "username":
		r.Username = value
	case "password":
		r.Password = value
	}
	return nil
}

type loginResponse struct {
	Message string `json:"message"`
}
