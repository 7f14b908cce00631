package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adboard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is not
	// currently used by the application but may be useful for logging or
	// metrics.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Mongo configures the MongoDB connection. Environment variables
	// prefixed with MONGO_ will populate this struct. URI and DB are
	// mandatory.
	Mongo configs.Mongo `envPrefix:"MONGO_"`
}

// Load reads configuration from a .env file (when present) and the process
// environment into a Config. A missing .env file is not an error; missing
// mandatory variables are. All other fields are loaded with their specified
// defaults when no environment variable is provided.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
