package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	settingsFileName = "settings.yaml"
	dayLayout        = "2006-01-02"
)

// Manager centralizes where day notes and settings live on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.orgstamp (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// SettingsPath is where persisted settings are stored.
func (m *Manager) SettingsPath() string {
	return filepath.Join(m.basePath, settingsFileName)
}

// DayNotePath resolves the absolute path to the note for the supplied day.
// The file may not exist yet; callers can choose to create it.
func (m *Manager) DayNotePath(t time.Time) string {
	return filepath.Join(m.basePath, dayNoteRel(t))
}

// DayLink maps a [[target]] link to the day note it refers to, relative to
// the base path. Targets that are not dates are returned unchanged.
func (m *Manager) DayLink(target string) string {
	day, err := time.Parse(dayLayout, target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(dayNoteRel(day))
}

// EnsureDayNote guarantees the directory tree exists and the day note is
// present with its heading. It returns the absolute path to the file.
func (m *Manager) EnsureDayNote(t time.Time) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.DayNotePath(t)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open day note: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat day note: %w", err)
	}

	if info.Size() == 0 {
		if _, err := file.WriteString(dayHeader(t)); err != nil {
			return "", fmt.Errorf("write day header: %w", err)
		}
	}

	return path, nil
}

func dayNoteRel(t time.Time) string {
	return filepath.Join(fmt.Sprintf("%04d", t.Year()), t.Format(dayLayout)+".md")
}

func dayHeader(t time.Time) string {
	return fmt.Sprintf("# %s %s\n\n", t.Format(dayLayout), t.Weekday())
}
