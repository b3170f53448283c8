package config

import (
	"os"
	"uno-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config provides configuration for the Uno server
type Config struct {
	loaded         bool
	Store          string `yaml:"store" envconfig:"store"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Redis          struct {
		Addr       string `yaml:"addr" envconfig:"addr"`
		DB         int    `yaml:"db" envconfig:"db"`
		TTLSeconds int    `yaml:"ttlSeconds" envconfig:"ttl_seconds"`
	} `yaml:"redis"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Store:          StoreMemory,
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
	}

	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.TTLSeconds = 86400
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with UNO_ override it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("UNO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("uno", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
