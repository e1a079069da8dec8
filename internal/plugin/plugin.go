package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/faizmokh/orgstamp/internal/editor"
	"github.com/faizmokh/orgstamp/internal/render"
	"github.com/faizmokh/orgstamp/internal/settings"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

// Registrar is what a host exposes to the plugin while it loads.
type Registrar interface {
	AddCommand(cmd editor.Command)
	AddRenderHook(hook render.Hook)
}

// Plugin wires the timestamp render hook and editor commands into a host.
type Plugin struct {
	store   settings.Store
	stamper *timestamp.Stamper
	logger  *slog.Logger

	mu       sync.RWMutex
	settings settings.Settings
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithStamper replaces the wall-clock stamper.
func WithStamper(stamper *timestamp.Stamper) Option {
	return func(p *Plugin) {
		p.stamper = stamper
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

// New returns a plugin that persists its settings through store.
func New(store settings.Store, opts ...Option) *Plugin {
	p := &Plugin{
		store:    store,
		stamper:  timestamp.NewStamper(),
		logger:   slog.Default(),
		settings: settings.Defaults(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads settings and registers the render hook and commands with reg.
func (p *Plugin) Load(ctx context.Context, reg Registrar) error {
	s, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	p.mu.Lock()
	p.settings = s
	p.mu.Unlock()

	reg.AddRenderHook(render.TimestampHook)
	cmds := editor.Commands(p.stamper, s.Step())
	for _, cmd := range cmds {
		reg.AddCommand(cmd)
	}

	p.logger.Debug("plugin loaded", "commands", len(cmds), "step", s.Step())
	return nil
}

// Unload releases nothing; registrations die with the host.
func (p *Plugin) Unload() {
	p.logger.Debug("plugin unloaded")
}

// Settings returns the current settings.
func (p *Plugin) Settings() settings.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// UpdateSettings applies fn to a copy of the settings and saves the result.
// The in-memory settings change only when the save succeeds.
func (p *Plugin) UpdateSettings(ctx context.Context, fn func(*settings.Settings) error) (settings.Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.settings
	if err := fn(&next); err != nil {
		return p.settings, err
	}
	if err := p.store.Save(ctx, next); err != nil {
		return p.settings, fmt.Errorf("save settings: %w", err)
	}
	p.settings = next
	return next, nil
}
