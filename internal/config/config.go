// Package config resolves where converted images and logs go and which
// format is preselected. Values come from, in increasing priority:
// built-in defaults, an optional YAML file, a .env file and the process
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/AnyUserName/imagify/internal/format"
)

// Environment variables consulted by Load.
const (
	EnvDestDir = "IMAGIFY_DEST_DIR"
	EnvLogFile = "IMAGIFY_LOG_FILE"
	EnvFormat  = "IMAGIFY_FORMAT"
	EnvQuality = "IMAGIFY_QUALITY"
)

// Config holds the resolved settings.
type Config struct {
	DestDir string `yaml:"dest_dir"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"` // 0 = encoder default
}

// Default returns the built-in settings: ~/Pictures/Imagify for outputs
// and <tmp>/Imagify/logs.txt for the log.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DestDir: filepath.Join(home, "Pictures", "Imagify"),
		LogFile: filepath.Join(os.TempDir(), "Imagify", "logs.txt"),
		Format:  string(format.Default),
	}
}

// Loader builds a Config.
type Loader struct {
	path      string
	useDotEnv bool
	getenv    func(string) string
}

// NewLoader creates a loader reading the YAML file at path (skipped when
// empty) and the .env file in the working directory.
func NewLoader(path string) *Loader {
	return &Loader{path: path, useDotEnv: true, getenv: os.Getenv}
}

// WithDotEnv toggles loading variables from a .env file.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithEnv overrides the environment lookup (useful for tests).
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	if getenv != nil {
		l.getenv = getenv
	}
	return l
}

// Load resolves the configuration. It does not validate: callers apply
// their own overrides first and then call Validate.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config %s: %w", l.path, err)
		}
	}

	if l.useDotEnv {
		// Existing environment variables win over .env entries.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	if v := l.getenv(EnvDestDir); v != "" {
		cfg.DestDir = v
	}
	if v := l.getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := l.getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := l.getenv(EnvQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvQuality, err)
		}
		cfg.Quality = q
	}

	return cfg, nil
}

// Validate checks the format and quality range.
func (c Config) Validate() error {
	if _, err := format.Parse(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("config: quality %d out of range 0-100", c.Quality)
	}
	if c.DestDir == "" {
		return errors.New("config: empty destination directory")
	}
	return nil
}

// Prepare creates the destination directory and the log file's
// directory.
func (c Config) Prepare() error {
	if err := os.MkdirAll(c.DestDir, 0o755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if c.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	return nil
}
