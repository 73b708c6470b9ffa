package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "png", cfg.Format)
	assert.True(t, strings.HasSuffix(cfg.DestDir, filepath.Join("Pictures", "Imagify")), cfg.DestDir)
	assert.Equal(t, filepath.Join(os.TempDir(), "Imagify", "logs.txt"), cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader("").WithDotEnv(false).WithEnv(env(nil)).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imagify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dest_dir: /data/out\nformat: webp\nquality: 60\n"), 0o644))

	cfg, err := NewLoader(path).WithDotEnv(false).WithEnv(env(map[string]string{
		EnvFormat:  "TIFF",
		EnvLogFile: "/var/log/imagify.txt",
	})).Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/out", cfg.DestDir)
	assert.Equal(t, "TIFF", cfg.Format)
	assert.Equal(t, 60, cfg.Quality)
	assert.Equal(t, "/var/log/imagify.txt", cfg.LogFile)
}

func TestLoadEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := NewLoader(path).WithDotEnv(false).WithEnv(env(nil)).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("destination: /x\n"), 0o644))

	_, err := NewLoader(path).WithDotEnv(false).WithEnv(env(nil)).Load()
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).WithDotEnv(false).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := NewLoader("").WithDotEnv(false).WithEnv(env(map[string]string{EnvQuality: "high"})).Load()
	assert.ErrorContains(t, err, EnvQuality)

	cases := map[string]map[string]string{
		"format":        {EnvFormat: "avif"},
		"quality range": {EnvQuality: "101"},
	}
	for name, vals := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := NewLoader("").WithDotEnv(false).WithEnv(env(vals)).Load()
			require.NoError(t, err, "overrides may still replace the value")
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPrepareCreatesDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := Config{
		DestDir: filepath.Join(root, "out", "nested"),
		LogFile: filepath.Join(root, "logs", "logs.txt"),
		Format:  "png",
	}
	require.NoError(t, cfg.Prepare())
	assert.DirExists(t, cfg.DestDir)
	assert.DirExists(t, filepath.Dir(cfg.LogFile))
}
