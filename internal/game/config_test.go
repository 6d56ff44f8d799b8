package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := configFrom(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.Pace)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := configFrom(lookupFrom(map[string]string{
		"WUMPUS_SEED":      "12345",
		"WUMPUS_CHEAT":     "true",
		"WUMPUS_PACE":      "0s",
		"WUMPUS_SCREEN":    "1",
		"WUMPUS_NO_COLOR":  "true",
		"WUMPUS_SAVE":      "/tmp/cave.bin",
		"WUMPUS_LOG_LEVEL": "debug",
		"WUMPUS_LOG_FILE":  "/tmp/wumpus.log",
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(12345), cfg.Seed)
	assert.True(t, cfg.Cheat)
	assert.True(t, cfg.Screen)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Telemetry)
	assert.Zero(t, cfg.Pace)
	assert.Equal(t, "/tmp/cave.bin", cfg.SavePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/wumpus.log", cfg.LogFile)
}

func TestConfigFromEnvRejectsGarbage(t *testing.T) {
	for _, env := range []map[string]string{
		{"WUMPUS_SEED": "twelve"},
		{"WUMPUS_PACE": "slow"},
		{"WUMPUS_CHEAT": "maybe"},
	} {
		_, err := configFrom(lookupFrom(env))
		assert.Error(t, err, "env %v", env)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Config{Seed: 42}
	assert.Equal(t, int64(42), cfg.ResolveSeed())

	cfg = Config{}
	seed := cfg.ResolveSeed()
	assert.NotZero(t, seed)
	assert.Equal(t, seed, cfg.Seed)
}
