package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"uno-server/pkg/db"
	"uno-server/pkg/uno"

	"github.com/google/uuid"
)

const gamesColumns = `uuid, data, created, updated`

// Postgres stores games in the `games` table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a store backed by dbh
func NewPostgres(dbh *sql.DB) *Postgres {
	return &Postgres{db: dbh}
}

func recordByRow(row db.Scanner) (*Record, error) {
	var record Record
	var data []byte
	if err := row.Scan(&record.ID, &data, &record.Created, &record.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, err
	}

	record.Game = &uno.Game{}
	if err := json.Unmarshal(data, record.Game); err != nil {
		return nil, err
	}

	record.Created = record.Created.UTC()
	record.Updated = record.Updated.UTC()

	return &record, nil
}

// Create assigns an ID to the game and persists it
func (p *Postgres) Create(ctx context.Context, game *uno.Game) (*Record, error) {
	data, err := json.Marshal(game)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO games (uuid, data)
VALUES ($1, $2)
RETURNING ` + gamesColumns

	row := p.db.QueryRowContext(ctx, query, uuid.New(), data)
	return recordByRow(row)
}

// Get returns the game or ErrNotFound
func (p *Postgres) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE uuid = $1`

	row := p.db.QueryRowContext(ctx, query, id)
	return recordByRow(row)
}

// Save persists changes made to an existing record
func (p *Postgres) Save(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record.Game)
	if err != nil {
		return err
	}

	const query = `
UPDATE games
SET data = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE uuid = $2
RETURNING updated`

	if err := p.db.QueryRowContext(ctx, query, data, record.ID).Scan(&record.Updated); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}

		return err
	}

	record.Updated = record.Updated.UTC()
	return nil
}
