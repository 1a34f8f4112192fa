package session

import (
	"time"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

// Session is the authentication state of one running app instance.
// Role is meaningful only while Authenticated is true.
type Session[R router.ID] struct {
	ID            string    // Random id assigned at login, empty while signed out
	Authenticated bool      // Whether a role has been granted
	Role          R         // Role granted at login; fixed until logout
	StartedAt     time.Time // Login time, zero while signed out
}

// CurrentRole returns the session role and whether one is set.
func (s Session[R]) CurrentRole() (R, bool) {
	if !s.Authenticated {
		var zero R
		return zero, false
	}
	return s.Role, true
}

// Notice is a user-visible message produced by a denied navigation.
// It survives until the next navigation, login, or logout.
type Notice[S router.ID] struct {
	Requested  S     // Screen the user asked for
	Redirected S     // Screen the gate sent them to instead
	Err        error // Why the request was refused
}
