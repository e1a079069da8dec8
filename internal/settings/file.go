package settings

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileStore persists settings as YAML.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, logger: slog.Default()}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the file, layering its values over Defaults. A missing file is
// not an error.
func (f *FileStore) Load(ctx context.Context) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.logger.Debug("settings file missing, using defaults", "path", f.path)
			return s, nil
		}
		return Settings{}, errors.Wrapf(err, "read settings %s", f.path)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "parse settings %s", f.path)
	}
	return s, nil
}

// Save writes s to the file, creating parent directories as needed.
func (f *FileStore) Save(ctx context.Context, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrap(err, "create settings directory")
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "write settings %s", f.path)
	}
	return nil
}
