package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// chdir mirrors testing.T.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.DefaultCount)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Palette)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	body := "default_count: 25\nlog_level: debug\npalette: [\"196\", \"21\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(body), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.DefaultCount)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"196", "21"}, cfg.Palette)
}

func TestLoadClampsNegativeCount(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("default_count: -4\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.DefaultCount)
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("default_count: [not a number\n"), 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
}

func TestEnvOverridesLogLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigRoundTrip(t *testing.T) {
	in := Config{DefaultCount: 3, LogLevel: "error", Palette: []string{"#ff0000"}}
	b, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out Config
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
