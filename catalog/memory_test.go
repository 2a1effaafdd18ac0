package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofood/dashboard/api"
	"github.com/gofood/dashboard/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plate(id int64, name string) api.FoodPlate {
	return api.FoodPlate{ID: id, Name: name, Image: "u", Price: "10", Description: "d", Available: true}
}

func TestMemoryCreateAssignsIDs(t *testing.T) {
	ctx := context.Background()
	m := catalog.NewMemory(plate(1, "A"))

	created, err := m.Create(ctx, plate(1, "B"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	created, err = m.Create(ctx, plate(0, "C"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	plates, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(plates))
}

func TestMemoryUpdateInPlace(t *testing.T) {
	ctx := context.Background()
	m := catalog.NewMemory(plate(1, "A"), plate(2, "B"), plate(3, "C"))

	updated, err := m.Update(ctx, plate(2, "B2"))
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.Name)

	plates, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B2", "C"}, names(plates))

	_, err = m.Update(ctx, plate(9, "Z"))
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := catalog.NewMemory(plate(1, "A"), plate(2, "B"))

	require.NoError(t, m.Delete(ctx, 1))
	assert.ErrorIs(t, m.Delete(ctx, 1), api.ErrNotFound)

	plates, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, names(plates))
}

func TestMemoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := catalog.NewMemory(plate(1, "A"))

	plates, err := m.List(ctx)
	require.NoError(t, err)
	plates[0].Name = "changed"

	plates, err = m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", plates[0].Name)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.json")
	err := os.WriteFile(path, []byte(`[
		{"id": 4, "name": "Ao molho", "image": "http://img/1", "price": "19.90", "description": "Macarrão", "available": true},
		{"name": "Veggie", "image": "http://img/2", "price": "21.90", "description": "Legumes", "available": false}
	]`), 0o600)
	require.NoError(t, err)

	m, err := catalog.LoadSeed(path)
	require.NoError(t, err)

	plates, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plates, 2)
	assert.Equal(t, int64(4), plates[0].ID)
	assert.Equal(t, int64(5), plates[1].ID)
	assert.False(t, plates[1].Available)
}

func TestLoadSeedInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"foods": []}`), 0o600))

	_, err := catalog.LoadSeed(path)
	assert.Error(t, err)

	_, err = catalog.LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func names(plates []api.FoodPlate) []string {
	var out []string
	for _, p := range plates {
		out = append(out, p.Name)
	}
	return out
}
