// Package ui is the terminal shell around the platform apps: a tab strip for
// switching apps and a body that draws the current screen of the active app.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

// Tab is one app in the shell.
type Tab struct {
	Title   string
	Surface app.Surface
}

// taskDoneMsg reports the end of an asynchronous screen action.
// Update runs result.Apply; the task goroutine never touches app state.
type taskDoneMsg struct {
	tab    int
	result view.Result
	err    error
}

// Shell is the bubbletea model of the demo front end. Each tab keeps its own
// session; switching tabs never touches another app's state.
type Shell struct {
	tabs   []Tab
	active int

	width  int
	height int

	status    string
	statusErr bool
	pending   bool

	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
	styles Styles
}

// NewShell creates a shell showing tabs[start].
func NewShell(tabs []Tab, start int, logger *slog.Logger) Shell {
	if start < 0 || start >= len(tabs) {
		start = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return Shell{
		tabs:   tabs,
		active: start,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		styles: DefaultStyles(),
	}
}

// Init initializes the model.
func (m Shell) Init() tea.Cmd {
	return nil
}

// Active returns the index of the active tab.
func (m Shell) Active() int {
	return m.active
}

// Status returns the last status line and whether it reports an error.
func (m Shell) Status() (string, bool) {
	return m.status, m.statusErr
}

// Pending reports whether an asynchronous action is running.
func (m Shell) Pending() bool {
	return m.pending
}

// Update handles messages.
func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case taskDoneMsg:
		m.pending = false
		appID := m.tabs[msg.tab].Surface.ID().String()
		switch {
		case bluecarbon.IsCancelled(msg.err):
			m.setStatus(msg.err.Error(), true)
			m.logger.Info("screen action cancelled", "app", appID)
		case msg.err != nil:
			m.setStatus(msg.err.Error(), true)
			m.logger.Warn("screen action failed", "app", appID, "error", msg.err)
		default:
			if msg.result.Apply != nil {
				msg.result.Apply()
			}
			m.setStatus(msg.result.Status, false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Shell) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.cancel()
		return m, tea.Quit
	}

	if len(m.tabs) == 0 {
		return m, nil
	}

	// A running task belongs to the active tab; keep it in view until it ends.
	if m.pending {
		return m, nil
	}

	switch key {
	case "tab":
		m.active = (m.active + 1) % len(m.tabs)
		m.setStatus("", false)
		return m, nil
	case "shift+tab":
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		m.setStatus("", false)
		return m, nil
	case "esc":
		m.current().Back()
		m.setStatus("", false)
		return m, nil
	case "ctrl+l":
		m.current().Logout()
		m.setStatus("", false)
		return m, nil
	}

	out, err := m.current().Render()
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	action, ok := out.Action(key)
	if !ok {
		return m, nil
	}

	switch {
	case action.Task != nil:
		m.pending = true
		m.setStatus(action.Label+"...", false)
		return m, runTask(m.ctx, m.active, action.Task)
	case action.Do != nil:
		action.Do()
		m.setStatus("", false)
	}
	return m, nil
}

func (m Shell) current() app.Surface {
	return m.tabs[m.active].Surface
}

// runTask runs task off the event loop. A task ended by the shell's own
// cancellation reports ErrCancelled.
func runTask(ctx context.Context, tab int, task view.Task) tea.Cmd {
	return func() tea.Msg {
		result, err := task(ctx)
		if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
			err = fmt.Errorf("%w: %w", bluecarbon.ErrCancelled, err)
		}
		return taskDoneMsg{tab: tab, result: result, err: err}
	}
}

// View renders the tab strip, the active screen, and the status and help lines.
func (m Shell) View() string {
	if len(m.tabs) == 0 {
		return "no apps\n"
	}

	var tabs []string
	for i, t := range m.tabs {
		style := m.styles.Tab
		if i == m.active {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(t.Title))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	out, err := m.current().Render()
	if err != nil {
		body = m.styles.Error.Render(err.Error())
	} else {
		body = m.renderOutput(out)
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.Error.Render(m.status)
		} else {
			status = m.styles.Status.Render(m.status)
		}
	}

	help := m.styles.Help.Render("tab/shift+tab switch app  esc back  ctrl+l sign out  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, m.styles.Body.Render(body), status, help) + "\n"
}

func (m Shell) renderOutput(out view.Output) string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(out.Title))
	sb.WriteString("\n")
	if out.Subtitle != "" {
		sb.WriteString(m.styles.Subtitle.Render(out.Subtitle))
		sb.WriteString("\n")
	}
	if out.Notice != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Notices[out.NoticeTone].Render(out.Notice))
		sb.WriteString("\n")
	}

	if len(out.Metrics) > 0 {
		cards := make([]string, 0, len(out.Metrics))
		for _, metric := range out.Metrics {
			value := metric.Value
			if metric.Unit != "" {
				value += " " + metric.Unit
			}
			if metric.Change != "" {
				value += " " + metric.Change
			}
			cards = append(cards, m.styles.Metric.Render(metric.Label+"\n"+value))
		}
		sb.WriteString("\n")
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		sb.WriteString("\n")
	}

	// Sections reuse the plain text layout without the header and actions.
	sections := view.Output{Sections: out.Sections}.Plain()
	sb.WriteString(strings.TrimPrefix(sections, "\n"))

	if len(out.Actions) > 0 {
		sb.WriteString("\n")
		for _, a := range out.Actions {
			fmt.Fprintf(&sb, "%s %s\n", m.styles.Key.Render("["+a.Key+"]"), a.Label)
		}
	}
	return sb.String()
}
