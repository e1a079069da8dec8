package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/faizmokh/orgstamp/internal/editor"
	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/plugin"
	"github.com/faizmokh/orgstamp/internal/render"
	"github.com/faizmokh/orgstamp/internal/settings"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

// host collects what the plugin registers so one-shot commands can run it.
type host struct {
	commands []editor.Command
	pipeline *render.Pipeline
}

func (h *host) AddCommand(cmd editor.Command) {
	h.commands = append(h.commands, cmd)
}

func (h *host) AddRenderHook(hook render.Hook) {
	h.pipeline.AddRenderHook(hook)
}

func (h *host) command(id string) (editor.Command, error) {
	cmd, ok := editor.Lookup(h.commands, id)
	if !ok {
		return editor.Command{}, fmt.Errorf("command %q is not registered", id)
	}
	return cmd, nil
}

func newPlugin(manager *files.Manager, stamper *timestamp.Stamper) *plugin.Plugin {
	store := settings.NewFileStore(manager.SettingsPath())
	return plugin.New(store, plugin.WithStamper(stamper))
}

func loadHost(ctx context.Context, manager *files.Manager, stamper *timestamp.Stamper) (*host, *plugin.Plugin, error) {
	h := &host{
		pipeline: render.NewPipeline(render.WithLinkResolver(manager.DayLink)),
	}
	p := newPlugin(manager, stamper)
	if err := p.Load(ctx, h); err != nil {
		return nil, nil, err
	}
	return h, p, nil
}

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func resolveTime(date time.Time, timeFlag string) (time.Time, error) {
	if timeFlag == "" {
		now := time.Now().In(date.Location())
		return time.Date(date.Year(), date.Month(), date.Day(), now.Hour(), now.Minute(), 0, 0, date.Location()), nil
	}

	parsed, err := time.ParseInLocation("15:04", timeFlag, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// openAt loads path into a buffer with the caret on the 1-based row at the
// 0-based column. A negative column means the end of the row.
// The file's line format is returned so the edit can be written back with
// the same endings.
func openAt(path string, row, col int) (*editor.LineBuffer, files.LineFormat, error) {
	lines, format, err := files.ReadLinesFormat(path)
	if err != nil {
		return nil, format, fmt.Errorf("read %s: %w", path, err)
	}
	buf := editor.NewLineBuffer(lines)
	if err := placeCaret(buf, row, col); err != nil {
		return nil, format, err
	}
	return buf, format, nil
}

func placeCaret(buf *editor.LineBuffer, row, col int) error {
	if row < 1 || row > buf.LineCount() {
		return fmt.Errorf("%w: row %d (have %d)", editor.ErrLineOutOfRange, row, buf.LineCount())
	}
	width := utf8.RuneCountInString(buf.Line(row - 1))
	if col < 0 {
		col = width
	}
	if col > width {
		return fmt.Errorf("column %d out of range (line has %d characters)", col, width)
	}
	buf.SetCursor(editor.Position{Line: row - 1, Column: col})
	return nil
}

// validateStep applies the same bounds as the saved step setting.
func validateStep(step int) error {
	var s settings.Settings
	return s.Set("step", strconv.Itoa(step))
}
