package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"uno-server/pkg/uno"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// KeyPrefix is prepended to the game ID to build the redis key
const KeyPrefix = "uno:game:"

// Redis stores serialized games as redis strings
// Every write refreshes the TTL; a zero TTL keeps games forever
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedis returns a store backed by client
func NewRedis(client redis.Cmdable, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func redisKey(id uuid.UUID) string {
	return KeyPrefix + id.String()
}

// Create assigns an ID to the game and persists it
func (r *Redis) Create(ctx context.Context, game *uno.Game) (*Record, error) {
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

	ok, err := r.client.SetNX(ctx, redisKey(record.ID), b, r.ttl).Result()
	if err != nil {
		return nil, err
	}

	if !ok {
		logrus.WithField("id", record.ID).Error("game id collision")
		return nil, errors.New("game already exists")
	}

	return record, nil
}

// Get returns the game or ErrNotFound
func (r *Redis) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	b, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var record Record
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// Save persists changes made to an existing record
func (r *Redis) Save(ctx context.Context, record *Record) error {
	updated := *record
	updated.Updated = now()

	b, err := json.Marshal(&updated)
	if err != nil {
		return err
	}

	ok, err := r.client.SetXX(ctx, redisKey(record.ID), b, r.ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return ErrNotFound
	}

	record.Updated = updated.Updated
	return nil
}
