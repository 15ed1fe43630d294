package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Overpass OverpassConfig
}

type MongoConfig struct {
	URL      string `env:"MONGO_URL, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=trails"`
}

type OverpassConfig struct {
	URL string `env:"OVERPASS_URL, default=https://overpass-api.de/api/interpreter"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
