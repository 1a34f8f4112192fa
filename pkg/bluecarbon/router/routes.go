package router

import (
	"errors"
	"fmt"
)

type access[R ID] struct {
	all   bool
	roles map[R]struct{}
}

// RouteTable holds the per-app reachability rules: the entry screen shown to
// signed-out sessions, the home screen of each role, and which roles may reach
// which screens. Build it once at composition time and do not mutate it afterwards.
type RouteTable[S ID, R ID] struct {
	entry S
	home  map[R]S
	reach map[S]*access[R]
	order []S
}

// NewRouteTable creates a table whose entry screen is entry.
// The entry screen is not reachable by any role unless explicitly allowed.
func NewRouteTable[S ID, R ID](entry S) *RouteTable[S, R] {
	return &RouteTable[S, R]{
		entry: entry,
		home:  make(map[R]S),
		reach: make(map[S]*access[R]),
	}
}

func (t *RouteTable[S, R]) accessFor(screen S) *access[R] {
	a, ok := t.reach[screen]
	if !ok {
		a = &access[R]{roles: make(map[R]struct{})}
		t.reach[screen] = a
		t.order = append(t.order, screen)
	}
	return a
}

// Allow makes screen reachable for the given roles.
func (t *RouteTable[S, R]) Allow(screen S, roles ...R) *RouteTable[S, R] {
	a := t.accessFor(screen)
	for _, role := range roles {
		a.roles[role] = struct{}{}
	}
	return t
}

// AllowAll makes every listed screen reachable for any signed-in role.
func (t *RouteTable[S, R]) AllowAll(screens ...S) *RouteTable[S, R] {
	for _, screen := range screens {
		t.accessFor(screen).all = true
	}
	return t
}

// Home sets the screen a role lands on after login and after a denied navigation.
func (t *RouteTable[S, R]) Home(role R, screen S) *RouteTable[S, R] {
	t.home[role] = screen
	return t
}

// Entry returns the screen shown to signed-out sessions.
func (t *RouteTable[S, R]) Entry() S {
	return t.entry
}

// HomeFor returns the home screen of role. Roles without a home fall back to the entry screen.
func (t *RouteTable[S, R]) HomeFor(role R) S {
	if screen, ok := t.home[role]; ok {
		return screen
	}
	return t.entry
}

// Reachable reports whether role may navigate to screen.
func (t *RouteTable[S, R]) Reachable(screen S, role R) bool {
	a, ok := t.reach[screen]
	if !ok {
		return false
	}
	if a.all {
		return true
	}
	_, ok = a.roles[role]
	return ok
}

// Screens returns every screen that appears in the table, entry first.
func (t *RouteTable[S, R]) Screens() []S {
	screens := []S{t.entry}
	for _, s := range t.order {
		if s != t.entry {
			screens = append(screens, s)
		}
	}
	return screens
}

// ReachableFor lists the screens role may navigate to, in declaration order.
func (t *RouteTable[S, R]) ReachableFor(role R) []S {
	var screens []S
	for _, s := range t.order {
		if t.Reachable(s, role) {
			screens = append(screens, s)
		}
	}
	return screens
}

// Validate checks the table against the app's role set and registry.
// Every screen in the table must be registered and every role needs a home it can reach.
func (t *RouteTable[S, R]) Validate(roles []R, registered func(S) bool) error {
	var errs []error

	for _, screen := range t.Screens() {
		if !registered(screen) {
			errs = append(errs, screenError("validate", screen, ErrUnknownScreen))
		}
	}

	for _, role := range roles {
		home, ok := t.home[role]
		if !ok {
			errs = append(errs, fmt.Errorf("router: validate: role %s has no home screen", role))
			continue
		}
		if !t.Reachable(home, role) {
			errs = append(errs, fmt.Errorf("router: validate: home %s of role %s: %w", home, role, ErrUnreachableScreen))
		}
	}

	return errors.Join(errs...)
}
