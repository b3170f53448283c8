package store

import (
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"uno-server/internal/rng"
	"uno-server/pkg/uno"
)

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	if err := client.Ping(cbg).Err(); err != nil {
		t.Fatal(err)
	}

	s := NewRedis(client, time.Minute)
	runStoreTests(t, s)

	record, err := s.Create(cbg, uno.NewGame(rng.NewSeeded(9)))
	assert.NoError(t, err)

	ttl, err := client.TTL(cbg, redisKey(record.ID)).Result()
	assert.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}
