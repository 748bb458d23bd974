package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "crop_advisory.db", cfg.DBPath)
	assert.Equal(t, "Smart_Farming_Crop_Yield_2024.csv", cfg.CSVPath)
	assert.Equal(t, 10, cfg.WindowSize)
	assert.Equal(t, 20, cfg.AdvisoryWindow)
	assert.Equal(t, 30, cfg.ForecastDays)
	assert.Equal(t, 20, cfg.PestLimit)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, uint64(0), cfg.RandSeed)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Zero(t, cfg.Rules.PHLow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("WINDOW_SIZE", "5")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("RAND_SEED", "42")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://example.org")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RULES_PH_LOW", "5.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.WindowSize)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, uint64(42), cfg.RandSeed)
	assert.Equal(t, []string{"http://localhost:3000", "http://example.org"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 5.5, cfg.Rules.PHLow, 1e-9)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := []byte("port: \"8088\"\ncsv_path: data/farm.csv\nlog:\n  format: console\nrules:\n  nitrogen_low: 25\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, "data/farm.csv", cfg.CSVPath)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.InDelta(t, 25.0, cfg.Rules.NitrogenLow, 1e-9)
}

func TestLoad_InvalidWindow(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WINDOW_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window_size")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := &AppConfig{Port: "1", WindowSize: 1, AdvisoryWindow: 1, ForecastDays: 1, PestLimit: 1, Log: LogConfig{Level: "loud"}}
	assert.Error(t, cfg.Validate())
}

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "console"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zap.WarnLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "nope"}))
}
