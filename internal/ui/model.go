package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/orgstamp/internal/editor"
	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/plugin"
	"github.com/faizmokh/orgstamp/internal/render"
)

// Model owns Bubble Tea state for editing a single note.
type Model struct {
	path   string
	buffer *editor.LineBuffer
	format files.LineFormat
	plugin *plugin.Plugin
	host   *registry

	keys   keyMap
	help   help.Model
	styles styles

	preview     bool
	previewHTML string

	loading    bool
	statusLine string
	errorLine  string
}

// registry is the host side of plugin registration.
type registry struct {
	commands map[string]editor.Command
	pipeline *render.Pipeline
}

func (r *registry) AddCommand(cmd editor.Command) {
	r.commands[cmd.ID] = cmd
}

func (r *registry) AddRenderHook(hook render.Hook) {
	r.pipeline.AddRenderHook(hook)
}

type fileLoadedMsg struct {
	lines  []string
	format files.LineFormat
	err    error
}

type savedMsg struct {
	err error
}

type previewMsg struct {
	html string
	err  error
}

// NewModel loads p into a fresh host and prepares to edit path. Rendered
// previews go through pipeline, which receives the plugin's render hooks.
func NewModel(ctx context.Context, path string, p *plugin.Plugin, pipeline *render.Pipeline) (Model, error) {
	host := &registry{
		commands: make(map[string]editor.Command),
		pipeline: pipeline,
	}
	if err := p.Load(ctx, host); err != nil {
		return Model{}, err
	}

	return Model{
		path:       path,
		buffer:     editor.NewLineBuffer(nil),
		format:     files.DefaultLineFormat,
		plugin:     p,
		host:       host,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     defaultStyles(),
		loading:    true,
		statusLine: fmt.Sprintf("Opening %s...", filepath.Base(path)),
	}, nil
}

// Init loads the note from disk.
func (m Model) Init() tea.Cmd {
	return m.loadFileCmd()
}

// Update wires editing, commands and async results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case fileLoadedMsg:
		return m.handleFileLoaded(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case previewMsg:
		return m.handlePreview(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		m.statusLine = "Saving..."
		m.errorLine = ""
		return m, m.saveCmd()
	case key.Matches(msg, m.keys.Preview):
		if m.preview {
			m.preview = false
			m.previewHTML = ""
			m.statusLine = "Preview closed."
			return m, nil
		}
		m.preview = true
		return m, m.previewCmd()
	}

	for _, cb := range m.keys.commandBindings() {
		if key.Matches(msg, cb.binding) {
			return m.runCommand(cb.id)
		}
	}

	edited := true
	switch msg.Type {
	case tea.KeyLeft:
		m.buffer.MoveLeft()
		edited = false
	case tea.KeyRight:
		m.buffer.MoveRight()
		edited = false
	case tea.KeyUp:
		m.buffer.MoveUp()
		edited = false
	case tea.KeyDown:
		m.buffer.MoveDown()
		edited = false
	case tea.KeyHome, tea.KeyCtrlA:
		m.buffer.Home()
		edited = false
	case tea.KeyEnd, tea.KeyCtrlE:
		m.buffer.End()
		edited = false
	case tea.KeyEnter:
		m.buffer.Newline()
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.buffer.Backspace()
	case tea.KeySpace:
		m.buffer.Insert(" ")
	case tea.KeyTab:
		m.buffer.Insert("\t")
	case tea.KeyRunes:
		m.buffer.Insert(string(msg.Runes))
	default:
		edited = false
	}

	if !edited {
		return m, nil
	}
	m.errorLine = ""
	return m, m.refreshPreview()
}

func (m Model) runCommand(id string) (tea.Model, tea.Cmd) {
	cmd, ok := m.host.commands[id]
	if !ok {
		m.errorLine = fmt.Sprintf("Command %s is not registered.", id)
		return m, nil
	}
	m.errorLine = ""
	if !cmd.Run(m.buffer) {
		// Nothing under the caret; leave the buffer and the user alone.
		m.statusLine = ""
		return m, nil
	}
	m.statusLine = cmd.Name + "."
	return m, m.refreshPreview()
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		if !errors.Is(msg.err, os.ErrNotExist) {
			m.errorLine = fmt.Sprintf("Failed to open %s: %v", m.path, msg.err)
			m.statusLine = ""
			return m, nil
		}
		m.buffer = editor.NewLineBuffer(nil)
		m.statusLine = "New file."
		return m, nil
	}

	m.buffer = editor.NewLineBuffer(msg.lines)
	m.format = msg.format
	m.statusLine = fmt.Sprintf("Loaded %d line%s.", len(msg.lines), plural(len(msg.lines)))
	m.errorLine = ""
	return m, nil
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Save failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.buffer.MarkSaved()
	m.statusLine = fmt.Sprintf("Saved %s.", filepath.Base(m.path))
	m.errorLine = ""
	return m, nil
}

func (m Model) handlePreview(msg previewMsg) (tea.Model, tea.Cmd) {
	if !m.preview {
		return m, nil
	}
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Preview failed: %v", msg.err)
		return m, nil
	}
	m.previewHTML = msg.html
	return m, nil
}

func (m Model) refreshPreview() tea.Cmd {
	if !m.preview {
		return nil
	}
	return m.previewCmd()
}

func (m Model) loadFileCmd() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		lines, format, err := files.ReadLinesFormat(path)
		return fileLoadedMsg{lines: lines, format: format, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	path := m.path
	lines := m.buffer.Lines()
	format := m.format
	return func() tea.Msg {
		return savedMsg{err: files.WriteLinesFormat(path, lines, format)}
	}
}

func (m Model) previewCmd() tea.Cmd {
	pipeline := m.host.pipeline
	src := []byte(m.buffer.Text())
	return func() tea.Msg {
		out, err := pipeline.Render(src)
		return previewMsg{html: out, err: err}
	}
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
