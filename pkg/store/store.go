package store

import (
	"context"
	"errors"
	"time"
	"uno-server/pkg/uno"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no game exists for the ID
var ErrNotFound = errors.New("game not found")

// Record is a persisted game
type Record struct {
	ID      uuid.UUID `json:"id"`
	Game    *uno.Game `json:"game"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Store persists games
// Implementations do not lock games; callers serialize changes to a single game
type Store interface {
	// Create assigns an ID to the game and persists it
	Create(ctx context.Context, game *uno.Game) (*Record, error)

	// Get returns the game or ErrNotFound
	Get(ctx context.Context, id uuid.UUID) (*Record, error)

	// Save persists changes made to an existing record
	Save(ctx context.Context, record *Record) error
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
