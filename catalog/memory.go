package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/gofood/dashboard/api"
)

// Memory keeps food plates in process, in insertion order.
type Memory struct {
	mu     sync.Mutex
	plates []api.FoodPlate
	nextID int64
}

func NewMemory(seed ...api.FoodPlate) *Memory {
	m := &Memory{nextID: 1}
	for _, p := range seed {
		m.add(p)
	}

	return m
}

// LoadSeed reads a JSON array of plates, as written by `dashboard foods list
// --json`, into a new Memory store. Plates without an id get one assigned.
func LoadSeed(path string) (*Memory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read seed file: %w", err)
	}

	var plates []api.FoodPlate
	err = json.Unmarshal(b, &plates)
	if err != nil {
		return nil, fmt.Errorf("unable to decode seed file %s: %w", path, err)
	}

	return NewMemory(plates...), nil
}

func (m *Memory) add(p api.FoodPlate) api.FoodPlate {
	if p.ID <= 0 || m.indexOf(p.ID) >= 0 {
		p.ID = m.nextID
	}
	if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
	m.plates = append(m.plates, p)

	return p
}

func (m *Memory) indexOf(id int64) int {
	for i := range m.plates {
		if m.plates[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) List(ctx context.Context) ([]api.FoodPlate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	plates := make([]api.FoodPlate, len(m.plates))
	copy(plates, m.plates)

	return plates, nil
}

// Create always assigns a fresh id, ignoring any id on the plate.
func (m *Memory) Create(ctx context.Context, plate api.FoodPlate) (api.FoodPlate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	plate.ID = 0
	return m.add(plate), nil
}

func (m *Memory) Update(ctx context.Context, plate api.FoodPlate) (api.FoodPlate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(plate.ID)
	if i < 0 {
		return api.FoodPlate{}, api.ErrNotFound
	}
	m.plates[i] = plate

	return plate, nil
}

func (m *Memory) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return api.ErrNotFound
	}
	m.plates = append(m.plates[:i], m.plates[i+1:]...)

	return nil
}
