package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

// Gate owns the Session of one app instance and arbitrates every navigation
// request through it. While signed out, every request lands on the entry screen.
// While signed in, requests go through the router; a denied request is
// redirected to the role's home screen and leaves a Notice.
//
// Gate is not safe for concurrent use, except for Stats.
type Gate[S router.ID, R router.ID] struct {
	app      string
	router   *router.Router[S, R]
	session  Session[R]
	verifier Verifier[R]
	notice   *Notice[S]
	stats    *Stats
	logger   *slog.Logger
	now      func() time.Time
}

// NewGate wraps r. The router must be positioned on its entry screen.
func NewGate[S router.ID, R router.ID](app string, r *router.Router[S, R]) *Gate[S, R] {
	g := &Gate[S, R]{
		app:    app,
		router: r,
		stats:  newStats(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}

	r.OnTransition(func(t router.Transition[S]) {
		if t.Kind != router.TransitionReset {
			g.stats.navigations.Inc()
		}
		g.logger.Debug("screen transition",
			"app", g.app,
			"session", g.session.ID,
			"kind", t.Kind.String(),
			"from", t.From.String(),
			"to", t.To.String(),
		)
	})

	return g
}

// WithLogger sets the logger used for session events.
func (g *Gate[S, R]) WithLogger(logger *slog.Logger) *Gate[S, R] {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// WithVerifier sets the credential verifier used by Authenticate.
func (g *Gate[S, R]) WithVerifier(v Verifier[R]) *Gate[S, R] {
	g.verifier = v
	return g
}

// WithClock overrides the time source used for session start times.
func (g *Gate[S, R]) WithClock(now func() time.Time) *Gate[S, R] {
	g.now = now
	return g
}

// Session returns a copy of the current session.
func (g *Gate[S, R]) Session() Session[R] {
	return g.session
}

// Current returns the current screen.
func (g *Gate[S, R]) Current() S {
	return g.router.Current()
}

// Params returns the params of the current screen.
func (g *Gate[S, R]) Params() router.Params {
	return g.router.Params()
}

// Notice returns the pending access notice, or nil.
func (g *Gate[S, R]) Notice() *Notice[S] {
	return g.notice
}

// Stats returns the gate counters.
func (g *Gate[S, R]) Stats() *Stats {
	return g.stats
}

// Router returns the wrapped router.
func (g *Gate[S, R]) Router() *router.Router[S, R] {
	return g.router
}

// Login grants role and moves to its home screen. Logging in over an active
// session ends that session first, so a role is never changed in place.
func (g *Gate[S, R]) Login(role R) {
	if g.session.Authenticated {
		g.Logout()
	}

	g.session = Session[R]{
		ID:            uuid.NewString(),
		Authenticated: true,
		Role:          role,
		StartedAt:     g.now(),
	}
	g.notice = nil
	g.stats.logins.Inc()

	home := g.router.Table().HomeFor(role)
	if err := g.router.Navigate(home, nil, role); err != nil {
		// Route tables are validated at composition, so this means a role
		// outside the app's role set was granted.
		g.logger.Error("home screen not reachable after login",
			"app", g.app,
			"role", role.String(),
			"home", home.String(),
			"error", err,
		)
	}

	g.logger.Info("session started",
		"app", g.app,
		"session", g.session.ID,
		"role", role.String(),
		"screen", g.router.Current().String(),
	)
}

// Verify checks creds and returns the role they grant without touching the
// session. It only reads fields fixed at construction, so it may run off the
// goroutine that owns the gate. Failures are returned as *AuthError.
func (g *Gate[S, R]) Verify(ctx context.Context, creds Credentials) (R, error) {
	if g.verifier == nil {
		var zero R
		g.stats.authFailures.Inc()
		return zero, &AuthError{Op: "authenticate", Identifier: creds.Identifier, Err: ErrNoVerifier}
	}

	role, err := g.verifier.Verify(ctx, creds)
	if err != nil {
		g.stats.authFailures.Inc()
		if !IsAuthError(err) {
			err = &AuthError{Op: "verify", Identifier: creds.Identifier, Err: err}
		}
		g.logger.Warn("authentication failed", "app", g.app, "error", err)
		return role, err
	}
	return role, nil
}

// Authenticate verifies creds and logs in with the resulting role.
// Verification failures leave the session untouched.
func (g *Gate[S, R]) Authenticate(ctx context.Context, creds Credentials) error {
	role, err := g.Verify(ctx, creds)
	if err != nil {
		return err
	}
	g.Login(role)
	return nil
}

// Logout resets the session and returns to the entry screen.
// Calling it while signed out is a no-op.
func (g *Gate[S, R]) Logout() {
	if !g.session.Authenticated {
		return
	}

	id := g.session.ID
	g.session = Session[R]{}
	g.notice = nil
	g.router.Reset()
	g.stats.logouts.Inc()

	g.logger.Info("session ended", "app", g.app, "session", id)
}

// RequestNavigate is the navigation callback handed to every rendered screen.
//
// Signed out, the target is replaced by the entry screen and nil is returned.
// Signed in, a reachable target is applied. An unreachable target redirects to
// the role's home screen, records a Notice, and returns the router error.
func (g *Gate[S, R]) RequestNavigate(target S, params router.Params) error {
	role, ok := g.session.CurrentRole()
	if !ok {
		g.stats.substitutions.Inc()
		g.logger.Debug("navigation while signed out",
			"app", g.app,
			"requested", target.String(),
			"to", g.router.Table().Entry().String(),
		)
		g.router.Reset()
		return nil
	}

	g.notice = nil

	err := g.router.Navigate(target, params, role)
	if err == nil {
		return nil
	}
	if !errors.Is(err, router.ErrUnreachableScreen) {
		return err
	}

	home := g.router.Table().HomeFor(role)
	if navErr := g.router.Navigate(home, nil, role); navErr != nil {
		return errors.Join(err, navErr)
	}

	g.notice = &Notice[S]{Requested: target, Redirected: home, Err: err}
	g.stats.redirects.Inc()
	g.logger.Info("navigation denied",
		"app", g.app,
		"session", g.session.ID,
		"role", role.String(),
		"requested", target.String(),
		"to", home.String(),
	)
	return err
}

// Back returns to the previous reachable screen, or home when there is none.
// Signed out, it stays on the entry screen.
func (g *Gate[S, R]) Back() {
	role, ok := g.session.CurrentRole()
	if !ok {
		g.router.Reset()
		return
	}

	g.notice = nil
	if g.router.Back(role) {
		return
	}

	home := g.router.Table().HomeFor(role)
	if g.router.Current() != home {
		_ = g.router.Navigate(home, nil, role)
		g.router.Stack().Clear()
	}
}
