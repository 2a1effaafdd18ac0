package ui

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofood/dashboard/api"
	"github.com/gofood/dashboard/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeClient struct {
	list   func() ([]api.FoodPlate, error)
	create func(api.FoodPlateInput) (api.FoodPlate, error)
	update func(int64, api.FoodPlateInput) (api.FoodPlate, error)
	delete func(int64) error
}

func (c *fakeClient) ListFoods(ctx context.Context) ([]api.FoodPlate, error) {
	return c.list()
}

func (c *fakeClient) CreateFood(ctx context.Context, in api.FoodPlateInput) (api.FoodPlate, error) {
	return c.create(in)
}

func (c *fakeClient) UpdateFood(ctx context.Context, id int64, in api.FoodPlateInput) (api.FoodPlate, error) {
	return c.update(id, in)
}

func (c *fakeClient) DeleteFood(ctx context.Context, id int64) error {
	return c.delete(id)
}

func backend(t *testing.T, seed ...api.FoodPlate) *api.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(api.Router(catalog.NewMemory(seed...), logger))
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL, srv.Client())
}

func update(t *testing.T, m Dashboard, msg tea.Msg) (Dashboard, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	d, ok := next.(Dashboard)
	require.True(t, ok)

	return d, cmd
}

// run executes cmd and feeds the resulting message back into the dashboard.
func run(t *testing.T, m Dashboard, cmd tea.Cmd) (Dashboard, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)

	return update(t, m, cmd())
}

func loaded(t *testing.T, client FoodsClient) Dashboard {
	t.Helper()

	m := NewDashboard(client)
	m, _ = update(t, m, m.loadFoods())
	require.False(t, m.loading)

	return m
}

func ids(foods []api.FoodPlate) []int64 {
	var out []int64
	for _, f := range foods {
		out = append(out, f.ID)
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var seedA = api.FoodPlate{ID: 1, Name: "A", Image: "http://img/a", Price: "10", Description: "first", Available: true}

func TestLoadRendersEveryPlate(t *testing.T) {
	client := backend(t,
		seedA,
		api.FoodPlate{ID: 2, Name: "B", Image: "u", Price: "20", Description: "d", Available: true},
		api.FoodPlate{ID: 3, Name: "C", Image: "u", Price: "30", Description: "d", Available: false},
	)

	m := loaded(t, client)

	assert.Len(t, m.Foods(), 3)
	assert.Len(t, m.FoodsList(), 3)
	assert.Contains(t, m.FoodsList()[0], "A")
	assert.Contains(t, m.FoodsList()[2], "Unavailable")
	assert.Contains(t, m.View(), "$ 20")
}

func TestLoadError(t *testing.T) {
	client := &fakeClient{list: func() ([]api.FoodPlate, error) {
		return nil, errors.New("connection refused")
	}}

	m := NewDashboard(client)
	m, cmd := update(t, m, m.loadFoods())
	assert.Empty(t, m.Foods())

	m, _ = run(t, m, cmd)
	assert.Contains(t, m.View(), "connection refused")
}

// Create then delete against a real backend, as an operator would.
func TestCreateThenDeleteScenario(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	m, cmd := run(t, m, m.handleAddFood(api.FoodPlateInput{Name: "B", Price: "20", Image: "u", Description: "d"}))
	require.NotNil(t, cmd)
	assert.Equal(t, []int64{1, 2}, ids(m.Foods()))
	assert.True(t, m.Foods()[1].Available)

	m, _ = run(t, m, m.handleDeleteFood(1))
	require.Len(t, m.Foods(), 1)
	assert.Equal(t, int64(2), m.Foods()[0].ID)
	assert.Equal(t, "B", m.Foods()[0].Name)
}

func TestCreateFailureLeavesState(t *testing.T) {
	client := &fakeClient{
		list: func() ([]api.FoodPlate, error) { return []api.FoodPlate{seedA}, nil },
		create: func(api.FoodPlateInput) (api.FoodPlate, error) {
			return api.FoodPlate{}, &api.Error{StatusCode: 500, Message: "Internal server error"}
		},
	}
	m := loaded(t, client)

	m, cmd := run(t, m, m.handleAddFood(api.FoodPlateInput{Name: "B", Price: "20", Image: "u", Description: "d"}))
	assert.Equal(t, []int64{1}, ids(m.Foods()))

	m, _ = run(t, m, cmd)
	assert.Contains(t, m.View(), "Unable to add food plate")
}

func TestUpdateReplacesInPlace(t *testing.T) {
	m := loaded(t, backend(t,
		seedA,
		api.FoodPlate{ID: 2, Name: "B", Image: "u", Price: "20", Description: "d", Available: false},
		api.FoodPlate{ID: 3, Name: "C", Image: "u", Price: "30", Description: "d", Available: true},
	))

	m.EditFood(m.Foods()[1])
	require.NotNil(t, m.Editing())
	assert.Equal(t, int64(2), m.Editing().ID)

	m, _ = run(t, m, m.handleUpdateFood(api.FoodPlateInput{Name: "B2", Price: "25", Image: "u2", Description: "d2"}))

	assert.Equal(t, []int64{1, 2, 3}, ids(m.Foods()))
	assert.Equal(t, api.FoodPlate{ID: 2, Name: "B2", Image: "u2", Price: "25", Description: "d2", Available: true}, m.Foods()[1])
}

func TestUpdateFailureSurfaces(t *testing.T) {
	client := &fakeClient{
		list: func() ([]api.FoodPlate, error) { return []api.FoodPlate{seedA}, nil },
		update: func(int64, api.FoodPlateInput) (api.FoodPlate, error) {
			return api.FoodPlate{}, errors.New("timeout")
		},
	}
	m := loaded(t, client)
	m.EditFood(seedA)

	m, cmd := run(t, m, m.handleUpdateFood(api.FoodPlateInput{Name: "A2", Price: "1", Image: "u", Description: "d"}))
	assert.Equal(t, seedA, m.Foods()[0])

	m, _ = run(t, m, cmd)
	assert.Contains(t, m.View(), "timeout")
}

func TestUpdateWithoutSelection(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	msg := m.handleUpdateFood(api.FoodPlateInput{Name: "A2", Price: "1", Image: "u", Description: "d"})()
	status, ok := msg.(statusMsg)
	require.True(t, ok)
	assert.Error(t, status.err)
}

func TestDeleteTwiceIsNoop(t *testing.T) {
	m := loaded(t, backend(t, seedA, api.FoodPlate{ID: 2, Name: "B", Image: "u", Price: "20", Description: "d", Available: true}))

	first := m.handleDeleteFood(1)
	second := m.handleDeleteFood(1)

	m, _ = run(t, m, first)
	m, cmd := run(t, m, second)

	assert.Equal(t, []int64{2}, ids(m.Foods()))

	m, _ = run(t, m, cmd)
	assert.NotContains(t, m.View(), "Unable to delete")
}

func TestDeleteFailureSurfaces(t *testing.T) {
	client := &fakeClient{
		list:   func() ([]api.FoodPlate, error) { return []api.FoodPlate{seedA}, nil },
		delete: func(int64) error { return &api.Error{StatusCode: 500, Message: "Internal server error"} },
	}
	m := loaded(t, client)

	m, cmd := run(t, m, m.handleDeleteFood(1))
	assert.Len(t, m.Foods(), 1)

	m, _ = run(t, m, cmd)
	assert.Contains(t, m.View(), "Unable to delete food plate")
}

func TestModalsAreExclusive(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	assert.False(t, m.AddModalOpen())
	assert.False(t, m.EditModalOpen())
	assert.Nil(t, m.Editing())

	m.ToggleModal()
	assert.True(t, m.AddModalOpen())
	assert.False(t, m.EditModalOpen())

	m.ToggleEditModal()
	assert.False(t, m.AddModalOpen())
	assert.True(t, m.EditModalOpen())
	assert.Equal(t, int64(1), m.Editing().ID)

	m.ToggleModal()
	assert.True(t, m.AddModalOpen())
	assert.False(t, m.EditModalOpen())
	assert.Nil(t, m.Editing())

	m.ToggleModal()
	assert.False(t, m.AddModalOpen())

	m.ToggleEditModal()
	m.ToggleEditModal()
	assert.False(t, m.EditModalOpen())
	assert.Nil(t, m.Editing())
}

func TestToggleEditModalWithoutPlates(t *testing.T) {
	m := loaded(t, backend(t))

	assert.Nil(t, m.ToggleEditModal())
	assert.False(t, m.EditModalOpen())
}

func TestAddThroughForm(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	m, _ = update(t, m, keyMsg("a"))
	require.True(t, m.AddModalOpen())

	m.form.image.SetValue("http://img/b")
	m.form.name.SetValue("B")
	m.form.price.SetValue("20")
	m.form.description.SetValue("second")

	// Walk to the submit button and press it.
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, keyMsg("down"))
	}
	m, cmd := update(t, m, keyMsg("enter"))
	m, cmd = run(t, m, cmd) // clickMsg
	m, cmd = run(t, m, cmd) // submitFoodMsg
	assert.False(t, m.AddModalOpen())

	m, _ = run(t, m, cmd)
	assert.Equal(t, []int64{1, 2}, ids(m.Foods()))
	assert.Equal(t, "B", m.Foods()[1].Name)
}

func TestFormRejectsMissingFields(t *testing.T) {
	m := loaded(t, backend(t, seedA))
	m.ToggleModal()

	m.form.name.SetValue("B")
	msg := m.form.submitForm()

	status, ok := msg.(statusMsg)
	require.True(t, ok)
	assert.ErrorContains(t, status.err, "image")
	assert.True(t, m.AddModalOpen())
}

func TestEditThroughCardButton(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	m, cmd := update(t, m, keyMsg("enter"))
	m, _ = run(t, m, cmd) // editFoodMsg
	require.True(t, m.EditModalOpen())
	assert.Equal(t, "A", m.form.name.Value())
	assert.Equal(t, "10", m.form.price.Value())

	m.form.price.SetValue("12")
	m, cmd = run(t, m, m.form.submitForm)
	assert.False(t, m.EditModalOpen())

	m, _ = run(t, m, cmd)
	assert.Equal(t, "12", m.Foods()[0].Price)
	assert.Len(t, m.Foods(), 1)
}

func TestDeleteThroughCardButton(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	m, _ = update(t, m, keyMsg("right"))
	m, cmd := update(t, m, keyMsg("enter"))
	m, cmd = run(t, m, cmd) // deleteFoodMsg
	m, _ = run(t, m, cmd)   // foodDeletedMsg

	assert.Empty(t, m.Foods())
	assert.Contains(t, m.View(), "No food plates yet")
}

func TestCardPressKeepsItsPlateWhenFocusMoves(t *testing.T) {
	m := loaded(t, backend(t, seedA, api.FoodPlate{ID: 2, Name: "B", Image: "u", Price: "20", Description: "d", Available: true}))

	m, _ = update(t, m, keyMsg("right"))
	m, press := update(t, m, keyMsg("enter"))
	require.NotNil(t, press)

	m, _ = update(t, m, keyMsg("down"))
	assert.Equal(t, 1, m.focusCard)

	m, cmd := run(t, m, press) // deleteFoodMsg
	m, _ = run(t, m, cmd)      // foodDeletedMsg
	assert.Equal(t, []int64{2}, ids(m.Foods()))
}

func TestStrayClickWithoutModalIsIgnored(t *testing.T) {
	m := loaded(t, backend(t, seedA))

	m, cmd := update(t, m, clickMsg{id: deleteButton})
	assert.Nil(t, cmd)
	assert.Len(t, m.Foods(), 1)
}

func TestEscClosesModalBeforeQuitting(t *testing.T) {
	m := loaded(t, backend(t, seedA))
	m.ToggleModal()

	m, cmd := update(t, m, keyMsg("esc"))
	assert.Nil(t, cmd)
	assert.False(t, m.AddModalOpen())

	_, cmd = update(t, m, keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFocusMovesBetweenCards(t *testing.T) {
	m := loaded(t, backend(t, seedA, api.FoodPlate{ID: 2, Name: "B", Image: "u", Price: "20", Description: "d", Available: true}))

	m, _ = update(t, m, keyMsg("down"))
	m, _ = update(t, m, keyMsg("down"))
	assert.Equal(t, 1, m.focusCard)

	m, cmd := update(t, m, keyMsg("d"))
	m, _ = run(t, m, cmd)
	assert.Equal(t, []int64{1}, ids(m.Foods()))
	assert.Equal(t, 0, m.focusCard)
}

func TestViewContainsFoodsList(t *testing.T) {
	m := loaded(t, backend(t, seedA))
	view := m.View()

	for _, item := range m.FoodsList() {
		assert.True(t, strings.Contains(view, strings.Split(item, "\n")[0]))
	}
	assert.Len(t, m.FoodsList(), 1)
}
