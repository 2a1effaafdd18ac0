package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	statusResetDelay = 5 * time.Second
)

var (
	statusBarFrame = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(lipgloss.Color("#ffffff")).
			PaddingLeft(1).
			PaddingRight(1).
			Width(dashboardWidth - 2).
			Height(1)

	faintStatusBarFrame = statusBarFrame.Copy().
				BorderForeground(lipgloss.Color("#aaaaaa"))

	errorStatusBarFrame = statusBarFrame.Copy().
				BorderForeground(lipgloss.Color("#fc0303"))
)

type statusMsg struct {
	status string
	err    error
}

// statusResetMsg clears the bar unless a newer status arrived since it was
// scheduled.
type statusResetMsg struct {
	seq int
}

type StatusBar struct {
	status string
	err    error
	seq    int
	delay  time.Duration
}

func newStatusBar() StatusBar {
	return StatusBar{delay: statusResetDelay}
}

func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.err = msg.err
		m.status = msg.status
		m.seq++

		return m, m.timeoutStatus(m.seq)
	case statusResetMsg:
		if msg.seq == m.seq {
			m.err = nil
			m.status = ""
		}
	}

	return m, nil
}

func (m StatusBar) View() string {
	f := faintStatusBarFrame
	if m.status != "" {
		f = statusBarFrame
	}
	text := m.status
	if m.err != nil {
		f = errorStatusBarFrame
		text = "Error: " + m.err.Error()
		if m.status != "" {
			text = m.status + ": " + m.err.Error()
		}
	}

	return f.Render(text)
}

func (m StatusBar) timeoutStatus(seq int) tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return statusResetMsg{seq: seq}
	})
}

func updateStatus(status string, err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{status: status, err: err} }
}
