package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gofood/dashboard/api"
)

const dashboardWidth = 72

var (
	listStyle = lipgloss.NewStyle().
			MarginTop(1)

	emptyListStyle = lipgloss.NewStyle().
			Width(dashboardWidth).
			Padding(1, 2).
			Faint(true)
)

// FoodsClient is the part of the foods backend the dashboard needs.
type FoodsClient interface {
	ListFoods(ctx context.Context) ([]api.FoodPlate, error)
	CreateFood(ctx context.Context, in api.FoodPlateInput) (api.FoodPlate, error)
	UpdateFood(ctx context.Context, id int64, in api.FoodPlateInput) (api.FoodPlate, error)
	DeleteFood(ctx context.Context, id int64) error
}

type foodsMsg struct {
	foods []api.FoodPlate
	err   error
}

type foodCreatedMsg struct {
	food api.FoodPlate
	err  error
}

type foodUpdatedMsg struct {
	id   int64
	food api.FoodPlate
	err  error
}

type foodDeletedMsg struct {
	id  int64
	err error
}

type modalKind int

const (
	modalClosed modalKind = iota
	modalAdding
	modalEditing
)

// modalState allows at most one modal at a time. editing is set only while
// the edit modal is open.
type modalState struct {
	kind    modalKind
	editing *api.FoodPlate
}

// Dashboard lists the food plates from the backend and lets the operator
// add, edit and delete them.
type Dashboard struct {
	client FoodsClient

	foods     []api.FoodPlate
	cards     []foodCard
	focusCard int

	modal modalState
	form  foodForm

	status  StatusBar
	spinner spinner.Model
	help    help.Model
	loading bool
}

func NewDashboard(client FoodsClient) Dashboard {
	return Dashboard{
		client:  client,
		form:    newFoodForm(),
		status:  newStatusBar(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		loading: true,
	}
}

// Init loads the plates once. Nothing triggers a reload afterwards.
func (m Dashboard) Init() tea.Cmd {
	return tea.Batch(m.loadFoods, m.spinner.Tick)
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log.Printf("Dashboard: %v", msg)

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal.kind != modalClosed {
			if key.Matches(msg, keys.Close) {
				m.closeModal()
				return m, nil
			}
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Add):
			return m, m.ToggleModal()
		case key.Matches(msg, keys.Edit):
			return m, m.ToggleEditModal()
		case key.Matches(msg, keys.Delete):
			if len(m.foods) > 0 {
				return m, m.handleDeleteFood(m.foods[m.focusCard].ID)
			}
		case key.Matches(msg, keys.Up):
			m.focusPrevious()
		case key.Matches(msg, keys.Down):
			m.focusNext()
		default:
			return m, m.updateFocused(msg)
		}
	case clickMsg:
		if m.modal.kind != modalClosed {
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusMsg, statusResetMsg:
		m.status, cmd = m.status.Update(msg)
		return m, cmd
	case foodsMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("unable to load food plates: %v", msg.err)
			return m, updateStatus("Unable to load food plates", msg.err)
		}
		m.setFoods(msg.foods)
	case foodCreatedMsg:
		if msg.err != nil {
			log.Printf("unable to add food plate: %v", msg.err)
			return m, updateStatus("Unable to add food plate", msg.err)
		}
		foods := make([]api.FoodPlate, 0, len(m.foods)+1)
		foods = append(foods, m.foods...)
		m.setFoods(append(foods, msg.food))
		return m, updateStatus(fmt.Sprintf("Added %s", msg.food.Name), nil)
	case foodUpdatedMsg:
		if msg.err != nil {
			log.Printf("unable to update food plate %d: %v", msg.id, msg.err)
			return m, updateStatus("Unable to update food plate", msg.err)
		}
		m.setFoods(replaceFood(m.foods, msg.id, msg.food))
		return m, updateStatus(fmt.Sprintf("Updated %s", msg.food.Name), nil)
	case foodDeletedMsg:
		// A plate the backend no longer has is as good as deleted.
		if msg.err != nil && !errors.Is(msg.err, api.ErrNotFound) {
			log.Printf("unable to delete food plate %d: %v", msg.id, msg.err)
			return m, updateStatus("Unable to delete food plate", msg.err)
		}
		m.setFoods(removeFood(m.foods, msg.id))
		return m, updateStatus("Food plate deleted", nil)
	case editFoodMsg:
		return m, m.EditFood(msg.food)
	case deleteFoodMsg:
		return m, m.handleDeleteFood(msg.id)
	case submitFoodMsg:
		switch m.modal.kind {
		case modalAdding:
			cmd = m.handleAddFood(msg.input)
		case modalEditing:
			cmd = m.handleUpdateFood(msg.input)
		}
		m.closeModal()
		return m, cmd
	}

	return m, nil
}

func (m Dashboard) View() string {
	out := []string{headerView(len(m.foods))}

	switch {
	case m.modal.kind != modalClosed:
		out = append(out, listStyle.Render(m.form.View()), m.help.ShortHelpView(keys.modalHelp()))
	case m.loading:
		out = append(out, emptyListStyle.Render(m.spinner.View()+" Loading food plates..."))
	case len(m.cards) == 0:
		out = append(out, emptyListStyle.Render("No food plates yet. Press a to add one."))
	default:
		out = append(out, listStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.FoodsList()...)), m.help.ShortHelpView(keys.listHelp()))
	}

	out = append(out, m.status.View())

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// FoodsList renders the foods list, one card per plate in list order. View
// shows exactly these entries, so tests count plates through it.
func (m Dashboard) FoodsList() []string {
	items := make([]string, 0, len(m.cards))
	for _, c := range m.cards {
		items = append(items, c.View())
	}
	return items
}

// Foods returns the plates currently held by the dashboard.
func (m Dashboard) Foods() []api.FoodPlate {
	return m.foods
}

// Editing returns the plate open in the edit modal, or nil.
func (m Dashboard) Editing() *api.FoodPlate {
	if m.modal.kind != modalEditing {
		return nil
	}
	return m.modal.editing
}

func (m Dashboard) AddModalOpen() bool {
	return m.modal.kind == modalAdding
}

func (m Dashboard) EditModalOpen() bool {
	return m.modal.kind == modalEditing
}

// ToggleModal opens or closes the add modal. Opening it replaces an open
// edit modal.
func (m *Dashboard) ToggleModal() tea.Cmd {
	if m.modal.kind == modalAdding {
		m.closeModal()
		return nil
	}

	m.modal = modalState{kind: modalAdding}
	return m.form.Open("New plate", "Add plate", nil)
}

// ToggleEditModal closes an open edit modal, or opens it for the focused
// plate.
func (m *Dashboard) ToggleEditModal() tea.Cmd {
	if m.modal.kind == modalEditing {
		m.closeModal()
		return nil
	}
	if len(m.foods) == 0 {
		return nil
	}

	return m.EditFood(m.foods[m.focusCard])
}

// EditFood selects food for editing and opens the edit modal.
func (m *Dashboard) EditFood(food api.FoodPlate) tea.Cmd {
	m.modal = modalState{kind: modalEditing, editing: &food}
	return m.form.Open("Edit plate", "Save changes", &food)
}

func (m *Dashboard) closeModal() {
	m.modal = modalState{kind: modalClosed}
	m.form.Blur()
}

func (m Dashboard) loadFoods() tea.Msg {
	foods, err := m.client.ListFoods(context.Background())
	return foodsMsg{foods: foods, err: err}
}

func (m Dashboard) handleAddFood(input api.FoodPlateInput) tea.Cmd {
	return func() tea.Msg {
		food, err := m.client.CreateFood(context.Background(), input)
		return foodCreatedMsg{food: food, err: err}
	}
}

// handleUpdateFood saves input over the plate being edited. The id is taken
// when the command is built, so closing the modal afterwards is safe.
func (m Dashboard) handleUpdateFood(input api.FoodPlateInput) tea.Cmd {
	if m.modal.editing == nil {
		return updateStatus("", errors.New("no food plate selected for editing"))
	}
	id := m.modal.editing.ID

	return func() tea.Msg {
		food, err := m.client.UpdateFood(context.Background(), id, input)
		return foodUpdatedMsg{id: id, food: food, err: err}
	}
}

func (m Dashboard) handleDeleteFood(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteFood(context.Background(), id)
		return foodDeletedMsg{id: id, err: err}
	}
}

// setFoods replaces the list and rebuilds the cards, keeping the focused
// position where possible.
func (m *Dashboard) setFoods(foods []api.FoodPlate) {
	m.foods = foods

	m.cards = make([]foodCard, 0, len(foods))
	for _, f := range foods {
		m.cards = append(m.cards, newFoodCard(f))
	}

	if m.focusCard >= len(m.cards) {
		m.focusCard = len(m.cards) - 1
	}
	if m.focusCard < 0 {
		m.focusCard = 0
	}
	if len(m.cards) > 0 {
		m.cards[m.focusCard].Focus()
	}
}

func (m *Dashboard) focusPrevious() {
	if m.focusCard == 0 {
		return
	}
	m.cards[m.focusCard].Blur()
	m.focusCard -= 1
	m.cards[m.focusCard].Focus()
}

func (m *Dashboard) focusNext() {
	if m.focusCard >= len(m.cards)-1 {
		return
	}
	m.cards[m.focusCard].Blur()
	m.focusCard += 1
	m.cards[m.focusCard].Focus()
}

func (m *Dashboard) updateFocused(msg tea.Msg) tea.Cmd {
	if len(m.cards) == 0 {
		return nil
	}

	var cmd tea.Cmd
	m.cards[m.focusCard], cmd = m.cards[m.focusCard].Update(msg)
	return cmd
}

func replaceFood(foods []api.FoodPlate, id int64, food api.FoodPlate) []api.FoodPlate {
	out := make([]api.FoodPlate, 0, len(foods))
	for _, f := range foods {
		if f.ID == id {
			f = food
		}
		out = append(out, f)
	}
	return out
}

func removeFood(foods []api.FoodPlate, id int64) []api.FoodPlate {
	out := make([]api.FoodPlate, 0, len(foods))
	for _, f := range foods {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}
