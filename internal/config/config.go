// Package config loads server configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/dmgrid/encounter-api/internal/errors"
)

// Config holds the server's environment-driven settings.
type Config struct {
	// HTTPAddr is the listen address for the API and player-view
	// websocket.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// RedisAddr is the address of the Redis instance backing saved
	// encounters and the live snapshot.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	RedisPoolSize int `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

// Load parses configuration from process environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return &cfg, nil
}
