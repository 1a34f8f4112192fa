// Package app composes a screen registry, a route table, and a session gate
// into one independently running app instance.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/internal"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/session"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

// Options configures an app instance.
type Options struct {
	Logger     *slog.Logger         // Session event logger, discarded when nil
	Translator *internal.Translator // Message catalog, ids are shown verbatim when nil
	Ledger     settlement.Service   // Settlement backend, a simulated ledger when nil
}

// Surface is the app-independent view of an instance, used by front ends that
// switch between apps without knowing their screen and role types.
type Surface interface {
	ID() constants.AppID
	Render() (view.Output, error)
	Back()
	Logout()
	Authenticated() bool
	Stats() session.StatsSnapshot
}

// App is one app instance: its own registry, router and session.
// Nothing is shared between instances.
type App[S router.ID, R router.ID] struct {
	id       constants.AppID
	roles    []R
	registry *router.Registry[S, Renderer[S, R]]
	gate     *session.Gate[S, R]
	t        *internal.Translator
	ledger   settlement.Service
}

// New seals registry, validates table against it and roles, and builds the session gate.
func New[S router.ID, R router.ID](
	id constants.AppID,
	table *router.RouteTable[S, R],
	roles []R,
	registry *router.Registry[S, Renderer[S, R]],
	opts Options,
) (*App[S, R], error) {
	registry.Seal()

	if len(roles) == 0 {
		return nil, fmt.Errorf("app %s: no roles", id)
	}
	if err := table.Validate(roles, registry.Has); err != nil {
		return nil, fmt.Errorf("app %s: %w", id, err)
	}

	gate := session.NewGate(id.String(), router.New(table)).WithLogger(opts.Logger)

	ledger := opts.Ledger
	if ledger == nil {
		ledger = settlement.NewSimulated(constants.DefaultSettlementDelay, constants.DefaultSettlementNetwork).
			WithLogger(opts.Logger)
	}

	return &App[S, R]{
		id:       id,
		roles:    roles,
		registry: registry,
		gate:     gate,
		t:        opts.Translator,
		ledger:   ledger,
	}, nil
}

// MustNew is New for startup code; composition errors are programmer errors.
func MustNew[S router.ID, R router.ID](
	id constants.AppID,
	table *router.RouteTable[S, R],
	roles []R,
	registry *router.Registry[S, Renderer[S, R]],
	opts Options,
) *App[S, R] {
	a, err := New(id, table, roles, registry, opts)
	if err != nil {
		panic(err)
	}
	return a
}

// ID returns the app id.
func (a *App[S, R]) ID() constants.AppID {
	return a.id
}

// Roles returns the roles this app grants.
func (a *App[S, R]) Roles() []R {
	return a.roles
}

// Gate returns the session gate.
func (a *App[S, R]) Gate() *session.Gate[S, R] {
	return a.gate
}

// Registry returns the sealed screen registry.
func (a *App[S, R]) Registry() *router.Registry[S, Renderer[S, R]] {
	return a.registry
}

// Ledger returns the settlement backend.
func (a *App[S, R]) Ledger() settlement.Service {
	return a.ledger
}

// Current returns the current screen.
func (a *App[S, R]) Current() S {
	return a.gate.Current()
}

// Navigate forwards to the gate; see session.Gate.RequestNavigate.
func (a *App[S, R]) Navigate(target S, params router.Params) error {
	return a.gate.RequestNavigate(target, params)
}

// Login signs in with role.
func (a *App[S, R]) Login(role R) {
	a.gate.Login(role)
}

// Authenticate verifies creds and signs in.
func (a *App[S, R]) Authenticate(ctx context.Context, creds session.Credentials) error {
	return a.gate.Authenticate(ctx, creds)
}

// Logout ends the session.
func (a *App[S, R]) Logout() {
	a.gate.Logout()
}

// Back goes to the previous screen.
func (a *App[S, R]) Back() {
	a.gate.Back()
}

// Authenticated reports whether a role is signed in.
func (a *App[S, R]) Authenticated() bool {
	return a.gate.Session().Authenticated
}

// Stats returns the gate counters.
func (a *App[S, R]) Stats() session.StatsSnapshot {
	return a.gate.Stats().Snapshot()
}

// Frame builds the render input for the current state.
func (a *App[S, R]) Frame() Frame[S, R] {
	return Frame[S, R]{
		App:      a.id,
		Screen:   a.gate.Current(),
		Session:  a.gate.Session(),
		Params:   a.gate.Params(),
		Notice:   a.gate.Notice(),
		T:        a.t,
		Ledger:   a.ledger,
		navigate: a.gate.RequestNavigate,
		login:    a.gate.Login,
		verify:   a.gate.Verify,
		logout:   a.gate.Logout,
		back:     a.gate.Back,
	}
}

// Render resolves the renderer of the current screen and runs it.
func (a *App[S, R]) Render() (view.Output, error) {
	frame := a.Frame()

	render, err := a.registry.Resolve(frame.Screen)
	if err != nil {
		return view.Output{}, fmt.Errorf("app %s: %w", a.id, err)
	}

	out := render(frame)
	out.App = a.id.String()
	out.Screen = frame.Screen.String()
	if out.Title == "" {
		out.Title = frame.ScreenTitle(frame.Screen)
	}
	if frame.Notice != nil && out.Notice == "" {
		out.Notice = a.t.Tf("notice.denied", map[string]any{
			"Screen": frame.ScreenTitle(frame.Notice.Requested),
		})
		out.NoticeTone = view.ToneWarning
	}
	return out, nil
}
