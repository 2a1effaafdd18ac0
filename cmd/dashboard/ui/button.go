package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type button struct {
	label string
	id    string
	focus bool
}

// clickMsg is sent when a focused button is pressed. The open form picks it
// up by button id.
type clickMsg struct {
	id string
}

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			MarginLeft(1).
			MarginRight(1)

	focusLabelStyle = labelStyle.Copy().
			Foreground(lipgloss.Color("#ee6ff8"))

	dangerLabelStyle = labelStyle.Copy().
				Foreground(lipgloss.Color("#fc0303"))

	frameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#aaaaaa"))

	focusFrameStyle = lipgloss.NewStyle().
			Bold(true)
)

func newButton(label, id string) button {
	return button{label: label, id: id}
}

func (m button) Update(msg tea.Msg) (button, tea.Cmd) {
	log.Printf("Button[%s]: %v", m.id, msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			return m, m.click
		}
	}

	return m, nil
}

func (m button) click() tea.Msg {
	return clickMsg{id: m.id}
}

func (m button) View() string {
	frame := frameStyle
	label := labelStyle

	if m.focus {
		frame = focusFrameStyle
		label = focusLabelStyle
		if m.id == deleteButton {
			label = dangerLabelStyle
		}
	}

	return frame.Render("[") + label.Render(m.label) + frame.Render("]")
}

func (m *button) Focus() {
	m.focus = true
}

func (m *button) Blur() {
	m.focus = false
}
