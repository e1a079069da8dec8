package plugin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/orgstamp/internal/editor"
	"github.com/faizmokh/orgstamp/internal/render"
	"github.com/faizmokh/orgstamp/internal/settings"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

type recorder struct {
	commands []editor.Command
	hooks    []render.Hook
}

func (r *recorder) AddCommand(cmd editor.Command) { r.commands = append(r.commands, cmd) }
func (r *recorder) AddRenderHook(h render.Hook)   { r.hooks = append(r.hooks, h) }

type failingStore struct{ err error }

func (f failingStore) Load(context.Context) (settings.Settings, error) { return settings.Settings{}, f.err }
func (f failingStore) Save(context.Context, settings.Settings) error   { return f.err }

func TestLoadRegistersHookAndCommands(t *testing.T) {
	at := time.Date(2025, time.June, 1, 9, 58, 0, 0, time.UTC)
	p := New(
		settings.NewMemoryStore(settings.Settings{StepMinutes: 15}),
		WithStamper(timestamp.NewStamperAt(func() time.Time { return at })),
	)

	reg := &recorder{}
	require.NoError(t, p.Load(context.Background(), reg))

	require.Len(t, reg.hooks, 1)
	out, changed := reg.hooks[0].Rewrite("&lt;09:58&gt;")
	assert.True(t, changed)
	assert.Contains(t, out, `class="org-timestamp-time"`)

	ids := make([]string, 0, len(reg.commands))
	for _, c := range reg.commands {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		editor.InsertTimestampID,
		editor.InsertLinkedTimestampID,
		editor.ShiftForwardID,
		editor.ShiftBackwardID,
	}, ids)

	fwd, ok := editor.Lookup(reg.commands, editor.ShiftForwardID)
	require.True(t, ok)
	b := editor.NewLineBuffer([]string{"09:25"})
	assert.True(t, fwd.Run(b))
	assert.Equal(t, "09:40", b.Line(0))

	stamp, ok := editor.Lookup(reg.commands, editor.InsertTimestampID)
	require.True(t, ok)
	b = editor.NewLineBuffer(nil)
	stamp.Run(b)
	assert.Equal(t, "<2025-06-01 Sun 09:58>", b.Line(0))

	assert.Equal(t, 15, p.Settings().StepMinutes)
	p.Unload()
}

func TestLoadFailsWhenSettingsUnreadable(t *testing.T) {
	boom := errors.New("disk on fire")
	p := New(failingStore{err: boom})

	err := p.Load(context.Background(), &recorder{})
	assert.ErrorIs(t, err, boom)
}

func TestUpdateSettingsPersists(t *testing.T) {
	store := settings.NewMemoryStore(settings.Defaults())
	p := New(store)
	ctx := context.Background()
	require.NoError(t, p.Load(ctx, &recorder{}))

	got, err := p.UpdateSettings(ctx, func(s *settings.Settings) error {
		return s.Set("label", "journal")
	})
	require.NoError(t, err)
	assert.Equal(t, "journal", got.Label)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "journal", saved.Label)
}

func TestUpdateSettingsKeepsStateOnError(t *testing.T) {
	p := New(settings.NewMemoryStore(settings.Settings{Label: "before", StepMinutes: 5}))
	ctx := context.Background()
	require.NoError(t, p.Load(ctx, &recorder{}))

	_, err := p.UpdateSettings(ctx, func(s *settings.Settings) error {
		return s.Set("step", "-1")
	})
	require.Error(t, err)
	assert.Equal(t, "before", p.Settings().Label)
	assert.Equal(t, 5, p.Settings().StepMinutes)
}
