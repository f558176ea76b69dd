package auth

import (
	"context"

	"cartiva/internal/forms"

	"github.com/rs/zerolog"
)

// Actions are the page-level auth operations. None of them talks to a backend
// yet: they resolve immediately and change nothing, so callers must not rely on
// any session existing afterwards.
type Actions struct {
	logger *zerolog.Logger
}

func NewActions(opts ...Option) (*Actions, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return &Actions{logger: s.logger}, nil
}

func (a *Actions) Login(ctx context.Context, req forms.LoginRequest) error {
	a.logger.Debug().Msg("login is a placeholder")
	return nil
}

func (a *Actions) Register(ctx context.Context, req forms.RegisterRequest) error {
	a.logger.Debug().Msg("register is a placeholder")
	return nil
}

func (a *Actions) Logout(ctx context.Context) error {
	a.logger.Debug().Msg("logout is a placeholder")
	return nil
}

// Loading is always false: the actions finish before they return.
func (a *Actions) Loading() bool {
	return false
}

// Err is always nil: the actions cannot fail.
func (a *Actions) Err() error {
	return nil
}
