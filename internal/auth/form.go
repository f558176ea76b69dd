// Package auth drives the credential forms: it validates them, hands valid
// credentials to a submit callback and keeps the little state a page needs to
// render (field errors, a loading flag and a top-level error).
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cartiva/internal/forms"

	"github.com/rs/zerolog"
)

var ErrSubmitInProgress = errors.New("submit already in progress")

type Phase int

const (
	Idle Phase = iota
	Validating
	// Invalid is idle with field errors to show.
	Invalid
	Submitting
	// Failed is idle with a submit error to show.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// SubmitFunc receives credentials that passed validation.
type SubmitFunc[P any] func(ctx context.Context, payload P) error

// Values is a form's field set: editable by field name, validated as a whole
// and turned into the payload handed to the submit callback.
type Values[P any] interface {
	Set(field, value string) error
	Validate() forms.Errors
	Request() P
}

type settings struct {
	logger *zerolog.Logger
}

type Option func(*settings) error

func WithLogger(l *zerolog.Logger) Option {
	return func(s *settings) error {
		if l == nil {
			return errors.New("nil logger provided")
		}
		s.logger = l
		return nil
	}
}

func newSettings(opts []Option) (*settings, error) {
	nop := zerolog.Nop()
	s := &settings{logger: &nop}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type Form[V Values[P], P any] struct {
	name   string
	logger *zerolog.Logger
	submit SubmitFunc[P]

	mu     sync.Mutex
	values V
	errors forms.Errors
	phase  Phase
	err    error
}

type (
	LoginForm    = Form[*forms.Login, forms.LoginRequest]
	RegisterForm = Form[*forms.Register, forms.RegisterRequest]
)

// New builds a form around values. A nil submit is allowed: valid
// submissions are then only logged, since there is no backend to send them to.
func New[V Values[P], P any](
	name string,
	values V,
	submit SubmitFunc[P],
	opts ...Option,
) (*Form[V, P], error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With().Str("form", name).Logger()
	f := &Form[V, P]{
		name:   name,
		logger: &logger,
		submit: submit,
		values: values,
		errors: forms.Errors{},
	}
	if f.submit == nil {
		f.submit = f.logOnly
	}
	return f, nil
}

func NewLoginForm(
	initial forms.Login,
	submit SubmitFunc[forms.LoginRequest],
	opts ...Option,
) (*LoginForm, error) {
	return New[*forms.Login, forms.LoginRequest]("login", &initial, submit, opts...)
}

func NewRegisterForm(
	initial forms.Register,
	submit SubmitFunc[forms.RegisterRequest],
	opts ...Option,
) (*RegisterForm, error) {
	return New[*forms.Register, forms.RegisterRequest]("register", &initial, submit, opts...)
}

func (f *Form[V, P]) logOnly(context.Context, P) error {
	f.logger.Info().Msg("no submit handler, valid submission dropped")
	return nil
}

// Change records an edit of one field and forgets that field's error. Errors
// of other fields stay until the next submit.
func (f *Form[V, P]) Change(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.values.Set(field, value); err != nil {
		return err
	}
	if f.errors.Has(field) {
		f.errors = f.errors.Clear(field)
		if f.phase == Invalid && f.errors.Valid() {
			f.phase = Idle
		}
	}
	return nil
}

// Submit validates the form. Invalid forms report false with a nil error and
// keep their field errors for display. Valid forms are passed to the submit
// callback and its error, if any, is returned and kept as Err.
func (f *Form[V, P]) Submit(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if f.phase == Submitting {
		f.mu.Unlock()
		return false, ErrSubmitInProgress
	}

	f.phase = Validating
	f.err = nil
	errs := f.values.Validate()
	f.errors = errs
	if !errs.Valid() {
		f.phase = Invalid
		f.mu.Unlock()
		f.logger.Info().Strs("fields", errs.Fields()).Msg("form is invalid")
		return false, nil
	}

	payload := f.values.Request()
	f.phase = Submitting
	f.mu.Unlock()

	f.logger.Info().Msg("submitting form")
	err := f.submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.logger.Error().Err(err).Msg("submit failed")
		f.phase = Failed
		f.err = err
		return true, err
	}
	f.phase = Idle
	return true, nil
}

func (f *Form[V, P]) Errors() forms.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Clone()
}

func (f *Form[V, P]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase == Submitting
}

func (f *Form[V, P]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Form[V, P]) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Form[V, P]) Name() string {
	return f.name
}
