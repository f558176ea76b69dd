package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"cartiva/internal/auth"
	"cartiva/internal/config"
	"cartiva/internal/events"
	"cartiva/internal/forms"
	"cartiva/pkg/middleware"
	"cartiva/pkg/responses"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

const maxBodySize = 1 << 20

type Events interface {
	Publish(s events.Submission)
}

type Authenticator struct {
	service auth.Service
	events  Events
	gateway config.Gateway
}

type Option func(*Authenticator) error

func WithService(s auth.Service) Option {
	return func(a *Authenticator) error {
		a.service = s
		return nil
	}
}

func WithGateway(gw config.Gateway) Option {
	return func(a *Authenticator) error {
		a.gateway = gw
		return nil
	}
}

// WithEvents is optional: without it submissions are only logged.
func WithEvents(e Events) Option {
	return func(a *Authenticator) error {
		a.events = e
		return nil
	}
}

func New(opts ...Option) (*Authenticator, error) {
	a := new(Authenticator)
	for _, opt := range opts {
		err := opt(a)
		if err != nil {
			return nil, err
		}
	}
	if a.service == nil {
		return nil, errors.New("no auth service provided")
	}
	if a.gateway.URL == "" {
		return nil, errors.New("no gateway config provided")
	}

	return a, nil
}

// Routes mounts the form endpoints behind request tracing and CORS for origin.
func (a *Authenticator) Routes(origin string, log *zerolog.Logger) http.Handler {
	m := middleware.RequestTracing(log).Append(middleware.Cors(origin))

	mux := http.NewServeMux()
	mux.HandleFunc("OPTIONS /", middleware.Preflight(origin))
	mux.Handle("POST /login", m.ThenFunc(a.Login))
	mux.Handle("POST /register", m.ThenFunc(a.Register))
	mux.Handle("POST /logout", m.ThenFunc(a.Logout))
	mux.Handle("GET /config", m.ThenFunc(a.Config))
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	pkg, _ := json.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(pkg)
}

func (a *Authenticator) Login(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	log.Info().Msg("decoding login form")
	var loginForm forms.Login
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&loginForm); err != nil {
		log.Error().Err(err).Msg("couldn't parse login request")
		writeJSON(w, http.StatusUnprocessableEntity, &responses.Server{
			Message: "Couldn't parse login request",
		})
		return
	}

	var result *auth.Result
	f, err := auth.NewLoginForm(
		loginForm,
		func(ctx context.Context, req forms.LoginRequest) error {
			var err error
			result, err = a.service.Login(ctx, req)
			return err
		},
		auth.WithLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Msg("couldn't build login form")
		writeJSON(w, http.StatusInternalServerError, &responses.Server{
			Message: "couldn't log in. try again later",
		})
		return
	}

	handle(a, w, r, f, &result)
}

func (a *Authenticator) Register(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	log.Info().Msg("decoding registration form")
	var regForm forms.Register
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&regForm); err != nil {
		log.Error().Err(err).Msg("couldn't parse registration request")
		writeJSON(w, http.StatusUnprocessableEntity, &responses.Server{
			Message: "Couldn't parse registration request",
		})
		return
	}

	var result *auth.Result
	f, err := auth.NewRegisterForm(
		regForm,
		func(ctx context.Context, req forms.RegisterRequest) error {
			var err error
			result, err = a.service.Register(ctx, req)
			return err
		},
		auth.WithLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Msg("couldn't build registration form")
		writeJSON(w, http.StatusInternalServerError, &responses.Server{
			Message: "couldn't register user. try again later",
		})
		return
	}

	handle(a, w, r, f, &result)
}

// handle submits f and turns the outcome into a reply. result is filled by the
// submit callback of f.
func handle[V auth.Values[P], P any](
	a *Authenticator,
	w http.ResponseWriter,
	r *http.Request,
	f *auth.Form[V, P],
	result **auth.Result,
) {
	log := hlog.FromRequest(r)

	ok, err := f.Submit(r.Context())
	switch {
	case !ok && err == nil:
		errs := f.Errors()
		a.publish(f.Name(), events.OutcomeInvalid, errs.Fields())
		writeJSON(w, http.StatusBadRequest, &responses.Form{
			Message: "invalid " + f.Name() + " form",
			Errors:  errs,
		})
		return
	case err != nil:
		a.publish(f.Name(), events.OutcomeFailed, nil)
		if errors.Is(err, auth.ErrNotImplemented) {
			writeJSON(w, http.StatusNotImplemented, &responses.Server{
				Message: f.Name() + " is not available yet",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, &responses.Server{
			Message: "couldn't " + f.Name() + ". try again later",
		})
		return
	}

	if *result == nil {
		log.Error().Msg("auth service returned neither a result nor an error")
		a.publish(f.Name(), events.OutcomeFailed, nil)
		writeJSON(w, http.StatusInternalServerError, &responses.Server{
			Message: "couldn't " + f.Name() + ". try again later",
		})
		return
	}

	maxAge, err := sessionAge(*result, log)
	if err != nil {
		log.Error().Err(err).Msg("auth service returned an unusable token")
		a.publish(f.Name(), events.OutcomeFailed, nil)
		writeJSON(w, http.StatusInternalServerError, &responses.Server{
			Message: "couldn't " + f.Name() + ". try again later",
		})
		return
	}

	a.publish(f.Name(), events.OutcomeSubmitted, nil)
	setSessionCookies(w, (*result).Token, maxAge)
	writeJSON(w, http.StatusOK, &responses.Server{
		Message: "success",
	})
	log.Info().Str("user_id", (*result).User.Id).Msg("wrote response")
}

func (a *Authenticator) publish(form, outcome string, fields []string) {
	if a.events == nil {
		return
	}
	a.events.Publish(events.Submission{
		Form:          form,
		Outcome:       outcome,
		InvalidFields: fields,
	})
}

const defaultSessionAge = 3600

var errTokenExpired = errors.New("token already expired")

// sessionAge is the cookie max age in seconds: what is left of the token's
// lifetime, rounded up, or defaultSessionAge when the token has no expiry.
func sessionAge(res *auth.Result, log *zerolog.Logger) (int, error) {
	exp, err := res.ExpiresAt()
	if err != nil {
		log.Debug().Err(err).Msg("couldn't read token expiry, using default")
		return defaultSessionAge, nil
	}

	left := time.Until(exp)
	if left <= 0 {
		return 0, fmt.Errorf("%w at %s", errTokenExpired, exp.Format(time.RFC3339))
	}
	return int(math.Ceil(left.Seconds())), nil
}

func setSessionCookies(w http.ResponseWriter, token string, maxAge int) {
	authCookie := http.Cookie{
		Name:     "auth",
		Value:    "pass",
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	}

	jwtCookie := http.Cookie{
		Name:     "JWT",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	http.SetCookie(w, &authCookie)
	http.SetCookie(w, &jwtCookie)
}

func (a *Authenticator) Logout(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	if err := a.service.Logout(r.Context()); err != nil {
		log.Error().Err(err).Msg("couldn't log out")
		writeJSON(w, http.StatusInternalServerError, &responses.Server{
			Message: "couldn't log out",
		})
		return
	}

	for _, name := range []string{"auth", "JWT"} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
	writeJSON(w, http.StatusOK, &responses.Server{
		Message: "success",
	})
	log.Info().Msg("logged out")
}

// Config tells the front end where the gateway lives.
func (a *Authenticator) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &a.gateway)
}
