package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gofood/dashboard/api"
)

var (
	formFrame = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(lipgloss.Color("#c72828")).
			PaddingLeft(1).
			PaddingRight(1).
			Width(dashboardWidth - 2)

	formLabelStyle = lipgloss.NewStyle().
			Width(12).
			Faint(true)
)

const submitButton = "submit"

// submitFoodMsg carries a validated form. The dashboard decides whether it
// creates or updates a plate.
type submitFoodMsg struct {
	input api.FoodPlateInput
}

type formField int

const (
	imageField formField = iota
	nameField
	priceField
	descriptionField
	submitField
)

// foodForm is the body of both the add and the edit modal.
type foodForm struct {
	title       string
	image       textinput.Model
	name        textinput.Model
	price       textinput.Model
	description textinput.Model
	submit      button
	focusField  formField
}

func newTextInput(placeholder string, limit int) textinput.Model {
	t := textinput.New()
	t.Placeholder = placeholder
	t.CharLimit = limit
	t.Width = dashboardWidth - 20
	return t
}

func newFoodForm() foodForm {
	return foodForm{
		image:       newTextInput("Paste the image URL here", 512),
		name:        newTextInput("Ex: Moda Italiana", 128),
		price:       newTextInput("Ex: 19.90", 32),
		description: newTextInput("Description", 512),
	}
}

// Open resets the form for a new modal session. A non-nil food prefills the
// fields for editing.
func (m *foodForm) Open(title, submitLabel string, food *api.FoodPlate) tea.Cmd {
	m.Blur()
	m.title = title
	m.submit = newButton(submitLabel, submitButton)

	m.image.Reset()
	m.name.Reset()
	m.price.Reset()
	m.description.Reset()
	if food != nil {
		m.image.SetValue(food.Image)
		m.name.SetValue(food.Name)
		m.price.SetValue(food.Price)
		m.description.SetValue(food.Description)
	}

	m.focusField = imageField
	return m.focus()
}

func (m foodForm) Update(msg tea.Msg) (foodForm, tea.Cmd) {
	log.Printf("Form: %v", msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "shift+tab":
			return m, m.focusPrevious()
		case "down", "tab":
			return m, m.focusNext()
		case "enter":
			if m.focusField == submitField {
				return m, m.updateFocused(msg)
			}
			return m, m.focusNext()
		default:
			return m, m.updateFocused(msg)
		}
	case clickMsg:
		if msg.id == submitButton {
			return m, m.submitForm
		}
	}

	return m, nil
}

func (m foodForm) View() string {
	row := func(label string, input textinput.Model) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, formLabelStyle.Render(label), input.View())
	}

	return formFrame.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(m.title),
		row("Image", m.image),
		row("Name", m.name),
		row("Price", m.price),
		row("Description", m.description),
		"",
		m.submit.View(),
	))
}

func (m foodForm) Input() api.FoodPlateInput {
	return api.FoodPlateInput{
		Name:        m.name.Value(),
		Image:       m.image.Value(),
		Price:       m.price.Value(),
		Description: m.description.Value(),
	}
}

func (m foodForm) submitForm() tea.Msg {
	input := m.Input()
	if err := input.Validate(); err != nil {
		return statusMsg{err: err}
	}

	return submitFoodMsg{input: input}
}

func (m *foodForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.focusField {
	case imageField:
		m.image, cmd = m.image.Update(msg)
	case nameField:
		m.name, cmd = m.name.Update(msg)
	case priceField:
		m.price, cmd = m.price.Update(msg)
	case descriptionField:
		m.description, cmd = m.description.Update(msg)
	case submitField:
		m.submit, cmd = m.submit.Update(msg)
	}

	return cmd
}

func (m *foodForm) focus() tea.Cmd {
	switch m.focusField {
	case imageField:
		return m.image.Focus()
	case nameField:
		return m.name.Focus()
	case priceField:
		return m.price.Focus()
	case descriptionField:
		return m.description.Focus()
	case submitField:
		m.submit.Focus()
	}
	return nil
}

func (m *foodForm) Blur() {
	switch m.focusField {
	case imageField:
		m.image.Blur()
	case nameField:
		m.name.Blur()
	case priceField:
		m.price.Blur()
	case descriptionField:
		m.description.Blur()
	case submitField:
		m.submit.Blur()
	}
}

func (m *foodForm) focusNext() tea.Cmd {
	if m.focusField == submitField {
		return nil
	}

	m.Blur()
	m.focusField += 1
	return m.focus()
}

func (m *foodForm) focusPrevious() tea.Cmd {
	if m.focusField == imageField {
		return nil
	}

	m.Blur()
	m.focusField -= 1
	return m.focus()
}
