package settings

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/faizmokh/orgstamp/internal/timestamp"
)

// ErrUnknownKey is returned for keys that do not name a setting.
var ErrUnknownKey = errors.New("unknown setting")

// Settings holds the persisted preferences.
type Settings struct {
	// Label is free text shown next to the note title. It has no effect on
	// timestamp handling.
	Label string `yaml:"label"`
	// StepMinutes is how far the shift commands move a time before rounding.
	StepMinutes int `yaml:"step_minutes"`
}

// Keys lists the names accepted by Get and Set.
var Keys = []string{"label", "step"}

// Defaults returns the settings used when nothing has been saved yet.
func Defaults() Settings {
	return Settings{StepMinutes: timestamp.DefaultStep}
}

// Step returns the shift offset, falling back to the default for unset or
// non-positive values.
func (s Settings) Step() int {
	if s.StepMinutes <= 0 {
		return timestamp.DefaultStep
	}
	return s.StepMinutes
}

// Get returns the value of key formatted as text.
func (s Settings) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "label":
		return s.Label, nil
	case "step":
		return strconv.Itoa(s.Step()), nil
	default:
		return "", errors.Wrapf(ErrUnknownKey, "%q", key)
	}
}

// Set parses value into key.
func (s *Settings) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "label":
		s.Label = value
		return nil
	case "step":
		step, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || step <= 0 || step >= 24*60 {
			return errors.Errorf("invalid step %q (expected minutes between 1 and 1439)", value)
		}
		s.StepMinutes = step
		return nil
	default:
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}
}

// Store loads and saves settings on behalf of the host.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// MemoryStore keeps settings in memory.
type MemoryStore struct {
	mu    sync.Mutex
	value Settings
	saved bool
}

// NewMemoryStore returns a store seeded with s.
func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{value: s, saved: true}
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return Defaults(), nil
	}
	return m.value, nil
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = s
	m.saved = true
	return nil
}
