package store

import (
	"context"
	"encoding/json"
	"sync"
	"uno-server/pkg/uno"

	"github.com/google/uuid"
)

// Memory keeps serialized games in a map
// Every Get decodes a fresh copy, so callers never share a game through the store
type Memory struct {
	mu    sync.Mutex
	games map[uuid.UUID][]byte
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		games: make(map[uuid.UUID][]byte),
	}
}

// Create assigns an ID to the game and persists it
func (m *Memory) Create(ctx context.Context, game *uno.Game) (*Record, error) {
	ts := now()
	record := &Record{
		ID:      uuid.New(),
		Game:    game,
		Created: ts,
		Updated: ts,
	}

	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[record.ID] = b

	return record, nil
}

// Get returns the game or ErrNotFound
func (m *Memory) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	m.mu.Lock()
	b, found := m.games[id]
	m.mu.Unlock()

	if !found {
		return nil, ErrNotFound
	}

	var record Record
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// Save persists changes made to an existing record
func (m *Memory) Save(ctx context.Context, record *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.games[record.ID]; !found {
		return ErrNotFound
	}

	updated := *record
	updated.Updated = now()

	b, err := json.Marshal(&updated)
	if err != nil {
		return err
	}

	m.games[record.ID] = b
	record.Updated = updated.Updated
	return nil
}
