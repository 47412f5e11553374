package database

import (
	"context"
	"sync"

	"github.com/jalexanderII/spatial-todo/models"
)

// MemoryStore keeps todos in memory in insertion order. Data is lost on
// restart. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	todos []models.ToDo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) List(_ context.Context) ([]models.ToDo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]models.ToDo, 0, len(m.todos))
	for _, t := range m.todos {
		result = append(result, t.Clone())
	}
	return result, nil
}

func (m *MemoryStore) Create(_ context.Context, t models.ToDo) (*models.ToDo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t = t.Clone()
	t.ID = newID()
	m.todos = append(m.todos, t)
	created := t.Clone()
	return &created, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.todos {
		if m.todos[i].ID == oid {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) SetDone(_ context.Context, id string, done bool) error {
	_, err := m.update(id, func(t *models.ToDo) {
		t.IsDone = &done
	})
	return err
}

func (m *MemoryStore) UpdateContent(_ context.Context, id string, u models.ContentUpdate) (*models.ToDo, error) {
	return m.update(id, func(t *models.ToDo) {
		u.Apply(t)
	})
}

func (m *MemoryStore) UpdatePosition(_ context.Context, id string, u models.PositionUpdate) (*models.ToDo, error) {
	return m.update(id, func(t *models.ToDo) {
		u.Apply(t)
	})
}

// update applies fn to the todo with the given id and returns a copy of the
// result, or nil if there is no such todo.
func (m *MemoryStore) update(id string, fn func(t *models.ToDo)) (*models.ToDo, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.todos {
		if m.todos[i].ID == oid {
			fn(&m.todos[i])
			m.todos[i] = m.todos[i].Clone()
			updated := m.todos[i].Clone()
			return &updated, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryStore) Close(_ context.Context) error {
	return nil
}
