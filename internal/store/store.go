package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bettercalldasappan/countdown/internal/countdown"
)

// DefaultFilename is the event file created in the user's home directory.
const DefaultFilename = ".countdown.toml"

// Config is the persisted document.
type Config struct {
	Events []countdown.Event `toml:"events" yaml:"events"`
}

// File is a handle to an event file at an explicit path. The file need not
// exist yet; Load treats a missing file as an empty config.
type File struct {
	path string
}

// Open returns a handle to the event file at path.
func Open(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the event file location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, DefaultFilename), nil
}

// Path returns the file's location on disk.
func (f *File) Path() string {
	return f.path
}

// Load reads the event file. A file that does not exist yet yields an
// empty config; that is the normal first-run state, not an error.
func (f *File) Load() (Config, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load events: %w", err)
	}

	var cfg Config
	if f.usesYAML() {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load events: parse %s: %w", f.path, err)
	}
	return cfg, nil
}

// Save writes the config, replacing the file atomically via a temp file in
// the same directory. Missing parent directories are created.
func (f *File) Save(cfg Config) error {
	var (
		data []byte
		err  error
	)
	if f.usesYAML() {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("save events: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save events: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save events: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save events: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save events: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}

// Append adds an event to the stored list and saves the result. Existing
// events are kept; there is no de-duplication of names.
func (f *File) Append(ev countdown.Event) error {
	cfg, err := f.Load()
	if err != nil {
		return err
	}
	cfg.Events = append(cfg.Events, ev)
	return f.Save(cfg)
}

func (f *File) usesYAML() bool {
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
