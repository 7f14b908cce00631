package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoSettings(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "adboard")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.EqualValues(t, 8080, cfg.HTTP.Port)
	require.False(t, cfg.Mongo.SeedDemo)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "adboard", cfg.Mongo.Database)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "adboard_test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MONGO_SEED_DEMO", "true")
	t.Setenv("ENV", "dev")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.EqualValues(t, 9090, cfg.HTTP.Port)
	require.True(t, cfg.Mongo.SeedDemo)
}
