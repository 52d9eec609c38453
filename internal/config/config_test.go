package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "client", cfg.ClientDir)
	assert.Equal(t, int64(0), cfg.DeckSeed)
}

func TestLoadServerOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:3001")
	t.Setenv("CLIENT_DIR", "/srv/carecaca")
	t.Setenv("DECK_SEED", "42")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3001", cfg.HTTPAddr)
	assert.Equal(t, "/srv/carecaca", cfg.ClientDir)
	assert.Equal(t, int64(42), cfg.DeckSeed)
}

func TestLoadServerBadSeed(t *testing.T) {
	t.Setenv("DECK_SEED", "lots")

	_, err := LoadServer()
	assert.Error(t, err)
}

func TestLoadLog(t *testing.T) {
	cfg, err := LoadLog()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.Pretty)

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	cfg, err = LoadLog()
	require.NoError(t, err)
	assert.Equal(t, LogConfig{Level: "debug", Pretty: true, SampleEvery: 5}, cfg)
}

func TestLoadApp(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadApp()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddr)
	assert.Equal(t, "warn", cfg.Log.Level)
}
