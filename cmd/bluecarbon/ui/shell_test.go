package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/admin"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/mobile"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Shell, msg tea.Msg) (Shell, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	shell, ok := next.(Shell)
	require.True(t, ok)
	return shell, cmd
}

func newShell() (Shell, *mobile.App, *admin.App) {
	mob := mobile.New(app.Options{})
	adm := admin.New(app.Options{})
	return NewShell([]Tab{
		{Title: "Community", Surface: mob},
		{Title: "Registry Admin", Surface: adm},
	}, 0, nil), mob, adm
}

func TestShellTabNavigation(t *testing.T) {
	m, _, _ := newShell()
	assert.Equal(t, 0, m.Active())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Active())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.Active())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.Active())
}

func TestShellActionsReachTheActiveApp(t *testing.T) {
	m, mob, adm := newShell()

	m, _ = press(t, m, runes("1"))
	assert.True(t, mob.Authenticated())
	assert.Equal(t, mobile.ScreenHome, mob.Current())
	assert.False(t, adm.Authenticated())

	m, _ = press(t, m, runes("l"))
	assert.Equal(t, mobile.ScreenLeaderboard, mob.Current())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, mobile.ScreenHome, mob.Current())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.False(t, mob.Authenticated())
	assert.Equal(t, mobile.ScreenOnboarding, mob.Current())

	// Unbound keys are ignored.
	_, cmd := press(t, m, runes("z"))
	assert.Nil(t, cmd)
}

func TestShellRunsTasksAsync(t *testing.T) {
	m, _, adm := newShell()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := press(t, m, runes("2"))
	require.NotNil(t, cmd)
	assert.True(t, m.Pending())
	assert.False(t, adm.Authenticated())

	// Input is held while the task runs.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Active())

	// The task only verifies; the session changes when Update applies the result.
	msg := cmd()
	assert.False(t, adm.Authenticated())

	m, _ = press(t, m, msg)
	assert.False(t, m.Pending())
	assert.True(t, adm.Authenticated())
	assert.Equal(t, admin.ScreenDashboard, adm.Current())

	status, isErr := m.Status()
	assert.False(t, isErr)
	assert.Equal(t, "status.signed_in", status)
}

func TestShellTaskDoesNotRaceWithView(t *testing.T) {
	m, _, adm := newShell()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := press(t, m, runes("2"))
	require.NotNil(t, cmd)

	var (
		wg  sync.WaitGroup
		msg tea.Msg
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		msg = cmd()
	}()
	for i := 0; i < 200; i++ {
		_ = m.View()
	}
	wg.Wait()

	assert.False(t, adm.Authenticated())
	m, _ = press(t, m, msg)
	assert.True(t, adm.Authenticated())
	assert.Contains(t, m.View(), "screen.admin.dashboard")
}

func TestShellReportsCancelledTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := func(ctx context.Context) (view.Result, error) {
		return view.Result{Apply: func() { t.Fatal("cancelled task applied") }}, ctx.Err()
	}
	msg := runTask(ctx, 1, task)()

	done, ok := msg.(taskDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, bluecarbon.ErrCancelled)
	assert.ErrorIs(t, done.err, context.Canceled)

	m, _, adm := newShell()
	m, _ = press(t, m, done)
	status, isErr := m.Status()
	assert.True(t, isErr)
	assert.Contains(t, status, "cancelled")
	assert.False(t, adm.Authenticated())

	// Failures unrelated to the shell's context keep their own error.
	other := runTask(context.Background(), 0, func(context.Context) (view.Result, error) {
		return view.Result{}, errors.New("ledger offline")
	})().(taskDoneMsg)
	assert.NotErrorIs(t, other.err, bluecarbon.ErrCancelled)
}

func TestShellShowsDeniedNotice(t *testing.T) {
	m, mob, _ := newShell()
	mob.Login(mobile.RoleCommunityMember)

	m, _ = press(t, m, runes("w"))
	assert.Equal(t, mobile.ScreenHome, mob.Current())
	assert.Contains(t, m.View(), "notice.denied")
}

func TestShellView(t *testing.T) {
	m, _, _ := newShell()
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	v := m.View()
	assert.Contains(t, v, "Community")
	assert.Contains(t, v, "Registry Admin")
	assert.Contains(t, v, "screen.mobile.onboarding")
	assert.True(t, strings.Contains(v, "[1]"))
}

func TestShellQuit(t *testing.T) {
	m, _, _ := newShell()
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
