package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
	"uno-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("UNO_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("UNO_REDIS_DB", "5")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(StoreRedis, cfg.Store)
	a.Equal("postgres://uno@db:5432/uno?sslmode=disable", cfg.PGDSN)
	a.Equal("redis:6379", cfg.Redis.Addr)
	a.Equal(5, cfg.Redis.DB)
	a.Equal("debug", cfg.Log.Level)

	// defaults survive when the file omits a value
	a.Equal("./sql", cfg.MigrationsPath)
	a.Equal(86400, cfg.Redis.TTLSeconds)

	// ensure that it's only loaded once
	_ = os.Setenv("UNO_REDIS_DB", "6")
	// ensure we aren't using a pointer
	cfg.Redis.DB = 100
	cfg = Instance()
	a.Equal(5, cfg.Redis.DB)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("UNO_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Store, cfg.Store)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_badFile(t *testing.T) {
	clear1 := util.SetEnv("UNO_CONFIG_FILE", "testdata/bad.yaml")
	defer clear1()

	assert.Error(t, Load())
}
