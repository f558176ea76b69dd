package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cartiva/internal/forms"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotImplemented is returned by every backend operation that has no real
// integration yet. Callers must surface it rather than treat it as success.
var ErrNotImplemented = errors.New("not implemented yet")

type User struct {
	Id        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// Result is what the gateway answers to a successful login or registration.
type Result struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ExpiresAt reads the exp claim of the token. The signature is not checked:
// only the gateway can do that, this is for display.
func (r *Result) ExpiresAt() (time.Time, error) {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(r.Token, &claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}

type Service interface {
	Login(ctx context.Context, req forms.LoginRequest) (*Result, error)
	Register(ctx context.Context, req forms.RegisterRequest) (*Result, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
	RefreshToken(ctx context.Context) (string, error)
}

// Unimplemented stands in for the gateway until it exists.
type Unimplemented struct{}

var _ Service = Unimplemented{}

func (Unimplemented) Login(context.Context, forms.LoginRequest) (*Result, error) {
	return nil, fmt.Errorf("login: %w", ErrNotImplemented)
}

func (Unimplemented) Register(context.Context, forms.RegisterRequest) (*Result, error) {
	return nil, fmt.Errorf("register: %w", ErrNotImplemented)
}

// Logout has nothing to clear yet.
func (Unimplemented) Logout(context.Context) error {
	return nil
}

func (Unimplemented) CurrentUser(context.Context) (*User, error) {
	return nil, fmt.Errorf("current user: %w", ErrNotImplemented)
}

func (Unimplemented) RefreshToken(context.Context) (string, error) {
	return "", fmt.Errorf("refresh token: %w", ErrNotImplemented)
}
