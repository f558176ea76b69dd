// Package forms validates the storefront's credential forms.
//
// Validation is pure: the same values always produce the same Errors, and
// nothing outside the returned map is touched.
package forms

import "fmt"

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldFirstname       = "firstname"
	FieldLastname        = "lastname"
	FieldConfirmPassword = "confirmPassword"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Login holds the raw values of the login form.
type Login struct {
	Email    string `json:"email"    validate:"required,looseemail"`
	Password string `json:"password" validate:"required,min=8"`
}

func (l Login) Validate() Errors {
	return translate(validate.Struct(&l))
}

func (l *Login) Set(field, value string) error {
	switch field {
	case FieldEmail:
		l.Email = value
	case FieldPassword:
		l.Password = value
	default:
		return fmt.Errorf("login %q: %w", field, ErrUnknownField)
	}
	return nil
}

func (l Login) Request() LoginRequest {
	return LoginRequest{Email: l.Email, Password: l.Password}
}

// Register holds the raw values of the registration form.
type Register struct {
	Firstname       string `json:"firstname"       validate:"notblank"`
	Lastname        string `json:"lastname"        validate:"notblank"`
	Email           string `json:"email"           validate:"required,looseemail"`
	Password        string `json:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (r Register) Validate() Errors {
	return translate(validate.Struct(&r))
}

func (r *Register) Set(field, value string) error {
	switch field {
	case FieldFirstname:
		r.Firstname = value
	case FieldLastname:
		r.Lastname = value
	case FieldEmail:
		r.Email = value
	case FieldPassword:
		r.Password = value
	case FieldConfirmPassword:
		r.ConfirmPassword = value
	default:
		return fmt.Errorf("register %q: %w", field, ErrUnknownField)
	}
	return nil
}

// Request drops the confirmation, which only matters to the form.
func (r Register) Request() RegisterRequest {
	return RegisterRequest{
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Email:     r.Email,
		Password:  r.Password,
	}
}
