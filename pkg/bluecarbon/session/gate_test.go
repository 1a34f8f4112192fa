package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/session"
)

type screen int

const (
	screenEntry screen = iota
	screenHome
	screenReports
	screenAdmin
)

var allScreens = []screen{screenEntry, screenHome, screenReports, screenAdmin}

func (s screen) String() string {
	return [...]string{"entry", "home", "reports", "admin"}[s]
}

type role int

const (
	roleMember role = iota
	roleOperator
)

var allRoles = []role{roleMember, roleOperator}

func (r role) String() string {
	return [...]string{"member", "operator"}[r]
}

func parseRole(s string) (role, error) {
	switch s {
	case "member":
		return roleMember, nil
	case "operator":
		return roleOperator, nil
	}
	return 0, fmt.Errorf("role %q", s)
}

func newGate() *session.Gate[screen, role] {
	table := router.NewRouteTable[screen, role](screenEntry).
		AllowAll(screenHome, screenReports).
		Allow(screenAdmin, roleOperator).
		Home(roleMember, screenHome).
		Home(roleOperator, screenHome)
	return session.NewGate("test", router.New(table))
}

func TestSignedOutNavigationStaysOnEntry(t *testing.T) {
	g := newGate()
	for _, target := range allScreens {
		require.NoError(t, g.RequestNavigate(target, router.Params{"x": 1}))
		assert.Equal(t, screenEntry, g.Current(), "requested %s", target)
		assert.Nil(t, g.Params())
	}
	assert.EqualValues(t, len(allScreens), g.Stats().Snapshot().Substitutions)
	assert.EqualValues(t, 0, g.Stats().Snapshot().Navigations)
}

func TestLoginLandsOnHome(t *testing.T) {
	for _, r := range allRoles {
		g := newGate()
		g.Login(r)

		s := g.Session()
		assert.True(t, s.Authenticated)
		assert.Equal(t, r, s.Role)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, screenHome, g.Current())
	}
}

func TestDeniedNavigationRedirectsHome(t *testing.T) {
	g := newGate()
	g.Login(roleMember)
	require.NoError(t, g.RequestNavigate(screenReports, nil))

	err := g.RequestNavigate(screenAdmin, nil)
	require.Error(t, err)
	assert.True(t, router.IsUnreachable(err))
	assert.Equal(t, screenHome, g.Current())

	notice := g.Notice()
	require.NotNil(t, notice)
	assert.Equal(t, screenAdmin, notice.Requested)
	assert.Equal(t, screenHome, notice.Redirected)

	require.NoError(t, g.RequestNavigate(screenReports, nil))
	assert.Nil(t, g.Notice(), "notice clears on the next navigation")
	assert.EqualValues(t, 1, g.Stats().Snapshot().Redirects)
}

func TestEntryRequiresExplicitLogout(t *testing.T) {
	g := newGate()
	g.Login(roleOperator)

	err := g.RequestNavigate(screenEntry, nil)
	assert.True(t, router.IsUnreachable(err))
	assert.True(t, g.Session().Authenticated, "navigating to the entry screen must not log out")
	assert.Equal(t, screenHome, g.Current())
}

func TestLogoutIsIdempotent(t *testing.T) {
	g := newGate()
	g.Login(roleOperator)
	require.NoError(t, g.RequestNavigate(screenAdmin, router.Params{"tab": "users"}))

	g.Logout()
	once := g.Session()
	onceScreen := g.Current()

	g.Logout()
	assert.Equal(t, once, g.Session())
	assert.Equal(t, onceScreen, g.Current())
	assert.Equal(t, screenEntry, g.Current())
	assert.False(t, g.Session().Authenticated)
	assert.True(t, g.Router().Stack().IsEmpty())
	assert.EqualValues(t, 1, g.Stats().Snapshot().Logouts)
}

func TestLoginOverActiveSessionStartsNewSession(t *testing.T) {
	g := newGate()
	g.Login(roleOperator)
	first := g.Session().ID
	require.NoError(t, g.RequestNavigate(screenAdmin, nil))

	g.Login(roleMember)
	assert.NotEqual(t, first, g.Session().ID)
	assert.Equal(t, roleMember, g.Session().Role)
	assert.Equal(t, screenHome, g.Current())
	assert.True(t, g.Router().Stack().IsEmpty())
}

func TestBack(t *testing.T) {
	g := newGate()
	g.Back()
	assert.Equal(t, screenEntry, g.Current())

	g.Login(roleOperator)
	require.NoError(t, g.RequestNavigate(screenReports, nil))
	require.NoError(t, g.RequestNavigate(screenAdmin, nil))

	g.Back()
	assert.Equal(t, screenReports, g.Current())
	g.Back()
	assert.Equal(t, screenHome, g.Current())
	g.Back()
	assert.Equal(t, screenHome, g.Current())
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	g := newGate()
	err := g.Authenticate(ctx, session.Credentials{Identifier: "a@b.c", Role: "member"})
	assert.ErrorIs(t, err, session.ErrNoVerifier)

	g.WithVerifier(session.NewStaticVerifier(parseRole)).
		WithClock(func() time.Time { return time.Unix(100, 0) })

	err = g.Authenticate(ctx, session.Credentials{Identifier: "a@b.c", Role: "auditor"})
	require.Error(t, err)
	assert.True(t, session.IsAuthError(err))
	assert.ErrorIs(t, err, session.ErrUnknownRole)
	assert.False(t, g.Session().Authenticated)

	err = g.Authenticate(ctx, session.Credentials{Role: "member"})
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	require.NoError(t, g.Authenticate(ctx, session.Credentials{Identifier: "a@b.c", Role: "operator"}))
	assert.Equal(t, roleOperator, g.Session().Role)
	assert.Equal(t, time.Unix(100, 0), g.Session().StartedAt)
	assert.EqualValues(t, 3, g.Stats().Snapshot().AuthFailures)
}

func TestAuthenticateWrapsForeignErrors(t *testing.T) {
	boom := errors.New("idp unavailable")
	g := newGate().WithVerifier(session.VerifierFunc[role](func(context.Context, session.Credentials) (role, error) {
		return 0, boom
	}))

	err := g.Authenticate(context.Background(), session.Credentials{Identifier: "x"})
	assert.True(t, session.IsAuthError(err))
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, `session: verify "x": idp unavailable`)
}

func TestCancelledContextFailsVerification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newGate().WithVerifier(session.NewStaticVerifier(parseRole))
	err := g.Authenticate(ctx, session.Credentials{Identifier: "x", Role: "member"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerifyLeavesSessionUntouched(t *testing.T) {
	g := newGate().WithVerifier(session.NewStaticVerifier(parseRole))

	got, err := g.Verify(context.Background(), session.Credentials{Identifier: "a@b.c", Role: "operator"})
	require.NoError(t, err)
	assert.Equal(t, roleOperator, got)
	assert.False(t, g.Session().Authenticated)
	assert.Equal(t, screenEntry, g.Current())
	assert.Zero(t, g.Stats().Snapshot().Logins)
}
