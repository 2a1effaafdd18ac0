package ui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gofood/dashboard/api"
)

const (
	editButton   = "edit"
	deleteButton = "delete"
)

var (
	foodCardStyle = lipgloss.NewStyle().
			Width(dashboardWidth-2).
			Border(lipgloss.RoundedBorder(), true).
			PaddingLeft(1).
			PaddingRight(1)

	foodFocusedCardStyle = foodCardStyle.Copy().
				BorderForeground(lipgloss.Color("#035afc"))

	foodNameStyle = lipgloss.NewStyle().
			Bold(true)

	foodPriceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#39b54a")).
			Bold(true)

	foodImageStyle = lipgloss.NewStyle().
			Faint(true)

	foodAvailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00ff00"))

	foodUnavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fc0303"))
)

type editFoodMsg struct {
	food api.FoodPlate
}

type deleteFoodMsg struct {
	id int64
}

// foodCard renders a single plate with its edit and delete controls.
type foodCard struct {
	food        api.FoodPlate
	focus       bool
	buttons     []button
	buttonFocus int
}

func newFoodCard(food api.FoodPlate) foodCard {
	return foodCard{
		food: food,
		buttons: []button{
			newButton("edit", editButton),
			newButton("delete", deleteButton),
		},
	}
}

func (m foodCard) Update(msg tea.Msg) (foodCard, tea.Cmd) {
	log.Printf("Food[%d]: %v", m.food.ID, msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			m.focusPreviousButton()
		case "right":
			m.focusNextButton()
		case "enter", " ":
			// The command carries this card's plate, so focus moving before
			// it is delivered cannot retarget it.
			switch m.buttons[m.buttonFocus].id {
			case editButton:
				return m, m.edit
			case deleteButton:
				return m, m.delete
			}
		}
	}

	return m, nil
}

func (m foodCard) edit() tea.Msg {
	return editFoodMsg{food: m.food}
}

func (m foodCard) delete() tea.Msg {
	return deleteFoodMsg{id: m.food.ID}
}

func (m foodCard) View() string {
	availability := foodAvailableStyle.Render("Available")
	if !m.food.Available {
		availability = foodUnavailableStyle.Render("Unavailable")
	}

	var buttons []string
	for i := range m.buttons {
		buttons = append(buttons, m.buttons[i].View())
	}

	name := foodNameStyle.Render(m.food.Name)
	price := foodPriceStyle.Render(formatPrice(m.food.Price))
	gap := dashboardWidth - 6 - lipgloss.Width(name) - lipgloss.Width(price)
	if gap < 1 {
		gap = 1
	}

	out := []string{
		name + lipgloss.NewStyle().Width(gap).Render("") + price,
		m.food.Description,
		foodImageStyle.Render(m.food.Image),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, availability, "  ", lipgloss.JoinHorizontal(lipgloss.Top, buttons...)),
	}

	s := foodCardStyle
	if m.focus {
		s = foodFocusedCardStyle
	}
	if !m.food.Available {
		s = s.Copy().Faint(true)
	}

	return s.Render(lipgloss.JoinVertical(lipgloss.Left, out...))
}

// formatPrice shows the price as entered; it is text, not a number.
func formatPrice(p string) string {
	return fmt.Sprintf("$ %s", p)
}

func (m *foodCard) Focus() {
	m.focus = true
	m.buttons[m.buttonFocus].Focus()
}

func (m *foodCard) Blur() {
	m.focus = false
	m.buttons[m.buttonFocus].Blur()
}

func (m *foodCard) focusNextButton() {
	if m.buttonFocus == len(m.buttons)-1 {
		return
	}
	m.buttons[m.buttonFocus].Blur()
	m.buttonFocus += 1
	m.buttons[m.buttonFocus].Focus()
}

func (m *foodCard) focusPreviousButton() {
	if m.buttonFocus == 0 {
		return
	}
	m.buttons[m.buttonFocus].Blur()
	m.buttonFocus -= 1
	m.buttons[m.buttonFocus].Focus()
}
