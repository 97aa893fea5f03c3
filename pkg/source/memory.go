package source

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Memory is an ordered in-memory QuerySource. It assigns auto-incremented
// integer ids on insert and is safe for concurrent use, which makes it the
// default collaborator for tests and examples.
type Memory struct {
	mu      sync.RWMutex
	records []Record
	nextID  int
}

var _ QuerySource = (*Memory)(nil)

// NewMemory seeds a memory source with the provided records. Records without
// an id are assigned one; ids already present are preserved, and the counter
// starts past the highest numeric id so assigned ids never collide with
// seeded ones.
func NewMemory(records ...Record) *Memory {
	m := &Memory{nextID: 1}
	for _, record := range records {
		stored := record.Clone()
		if stored.ID() == "" {
			stored["id"] = m.nextID
			m.nextID++
		} else {
			m.bumpNextID(stored.ID())
		}
		m.records = append(m.records, stored)
	}
	return m
}

// bumpNextID advances the counter past an explicit numeric id.
func (m *Memory) bumpNextID(id string) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return
	}
	if n >= m.nextID {
		m.nextID = n + 1
	}
}

func (m *Memory) All(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, len(m.records))
	for i, record := range m.records {
		out[i] = record.Clone()
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.ID() == id {
			return record.Clone(), nil
		}
	}
	return nil, fmt.Errorf("memory get %q: %w", id, ErrNotFound)
}

func (m *Memory) Insert(_ context.Context, record Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := record.Clone()
	if stored.ID() == "" {
		stored["id"] = m.nextID
		m.nextID++
	} else {
		m.bumpNextID(stored.ID())
	}
	m.records = append(m.records, stored)
	return stored.Clone(), nil
}

func (m *Memory) Update(_ context.Context, id string, record Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.records {
		if existing.ID() != id {
			continue
		}
		updated := existing.Clone()
		for key, value := range record {
			if key == "id" || key == "pk" {
				continue
			}
			updated[key] = value
		}
		m.records[i] = updated
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("memory update %q: %w", id, ErrNotFound)
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.records {
		if existing.ID() != id {
			continue
		}
		m.records = append(m.records[:i], m.records[i+1:]...)
		return nil
	}
	return fmt.Errorf("memory delete %q: %w", id, ErrNotFound)
}
