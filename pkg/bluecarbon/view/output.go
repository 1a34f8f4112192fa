// Package view defines the output of a screen renderer: a display-neutral
// description of what a screen shows and which actions it offers.
// Front ends decide how to draw it.
package view

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

// Tone hints how a value or notice should be emphasized.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneWarning
	ToneCritical
)

// Metric is a headline figure, such as a KPI card.
type Metric struct {
	Label  string
	Value  string
	Unit   string
	Change string // e.g. "+8.2%", empty when not tracked
}

// Table is a simple grid of text cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Section is a titled block of lines and an optional table.
type Section struct {
	Heading string
	Lines   []string
	Table   *Table
}

// Result is what a finished Task hands back to the front end.
type Result struct {
	Status string // Short message for the user
	Apply  func() // State change to run on the UI goroutine, nil when none
}

// Task is an asynchronous action, such as submitting a ledger transaction.
// Tasks may run on any goroutine and must not change app state themselves;
// front ends call Result.Apply from the goroutine that renders.
type Task func(ctx context.Context) (Result, error)

// Action is something the user can trigger from a screen.
// Exactly one of Do and Task is set. Rendering never calls either;
// front ends call them in response to input.
type Action struct {
	Key   string // Single key the front end binds, e.g. "w"
	Label string
	Do    func()
	Task  Task
}

// Output is the complete, display-neutral result of rendering a screen.
type Output struct {
	App        string // App id, e.g. "mobile"
	Screen     string // Screen id, e.g. "wallet"
	Title      string
	Subtitle   string
	Icon       string // Icon name, see constants.Icon*
	Notice     string // Pending user-visible notice, empty when none
	NoticeTone Tone
	Metrics    []Metric
	Sections   []Section
	Actions    []Action
}

// Action returns the action bound to key.
func (o Output) Action(key string) (Action, bool) {
	for _, a := range o.Actions {
		if a.Key == key {
			return a, true
		}
	}
	return Action{}, false
}

// ActionKeys returns the bound keys in display order.
func (o Output) ActionKeys() []string {
	keys := make([]string, len(o.Actions))
	for i, a := range o.Actions {
		keys[i] = a.Key
	}
	return keys
}

// Plain renders the output as plain text.
func (o Output) Plain() string {
	var sb strings.Builder

	sb.WriteString(o.Title)
	sb.WriteString("\n")
	if o.Subtitle != "" {
		sb.WriteString(o.Subtitle)
		sb.WriteString("\n")
	}
	if o.Notice != "" {
		sb.WriteString("! ")
		sb.WriteString(o.Notice)
		sb.WriteString("\n")
	}

	if len(o.Metrics) > 0 {
		sb.WriteString("\n")
		for _, m := range o.Metrics {
			line := fmt.Sprintf("%s: %s", m.Label, m.Value)
			if m.Unit != "" {
				line += " " + m.Unit
			}
			if m.Change != "" {
				line += " (" + m.Change + ")"
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	for _, s := range o.Sections {
		sb.WriteString("\n")
		if s.Heading != "" {
			sb.WriteString(s.Heading)
			sb.WriteString("\n")
		}
		for _, line := range s.Lines {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if s.Table != nil {
			writeTable(&sb, s.Table)
		}
	}

	if len(o.Actions) > 0 {
		sb.WriteString("\n")
		for _, a := range o.Actions {
			fmt.Fprintf(&sb, "[%s] %s\n", a.Key, a.Label)
		}
	}

	return sb.String()
}

func writeTable(sb *strings.Builder, t *Table) {
	tw := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	if len(t.Columns) > 0 {
		fmt.Fprintln(tw, "  "+strings.Join(t.Columns, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, "  "+strings.Join(row, "\t"))
	}
	tw.Flush()
}
