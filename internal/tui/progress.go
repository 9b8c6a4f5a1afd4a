// Package tui shows live progress while a descriptor field is computed.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ldsim/internal/descriptor"
)

var (
	barDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	barPending = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusLine = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const barWidth = 50

type progressMsg struct {
	done, total int
}

type doneMsg struct {
	field *descriptor.Field
	err   error
}

type model struct {
	done    int
	total   int
	started time.Time
	field   *descriptor.Field
	err     error
	aborted bool
	cancel  func()
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil
	case doneMsg:
		m.field, m.err = msg.field, msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.aborted = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	filled := 0
	if m.total > 0 {
		filled = m.done * barWidth / m.total
	}
	sb.WriteString(barDone.Render(strings.Repeat("█", filled)))
	sb.WriteString(barPending.Render(strings.Repeat("░", barWidth-filled)))

	elapsed := time.Since(m.started).Round(100 * time.Millisecond)
	sb.WriteString(statusLine.Render(fmt.Sprintf("  %d/%d subproblems  %s", m.done, m.total, elapsed)))
	if m.aborted {
		sb.WriteString(statusLine.Render("  (cancelling...)"))
	}
	sb.WriteString("\n")
	sb.WriteString(statusLine.Render("q to cancel"))
	sb.WriteString("\n")

	return sb.String()
}

// Run executes solve under a live progress view. The progress callback
// handed to solve is safe to call from any goroutine. cancel is invoked
// when the user aborts; solve is expected to return once its context is
// cancelled.
func Run(cancel func(), solve func(progress func(done, total int)) (*descriptor.Field, error)) (*descriptor.Field, error) {
	p := tea.NewProgram(model{started: time.Now(), cancel: cancel})

	go func() {
		field, err := solve(func(done, total int) {
			p.Send(progressMsg{done: done, total: total})
		})
		p.Send(doneMsg{field: field, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(model)
	return m.field, m.err
}
