package ui

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/orgstamp/internal/timestamp"
)

type styles struct {
	header    lipgloss.Style
	timestamp lipgloss.Style
	clock     lipgloss.Style
	cursor    lipgloss.Style
	preview   lipgloss.Style
	errorText lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true),
		timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		cursor:    lipgloss.NewStyle().Reverse(true),
		preview:   lipgloss.NewStyle().Faint(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

type highlight uint8

const (
	plain highlight = iota
	stampRun
	clockRun
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := filepath.Base(m.path)
	if m.buffer.Modified() {
		header += " *"
	}
	if label := m.plugin.Settings().Label; label != "" {
		header += "  [" + label + "]"
	}
	b.WriteString(m.styles.header.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", lipgloss.Width(header)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		cur := m.buffer.Cursor()
		for i := 0; i < m.buffer.LineCount(); i++ {
			col := -1
			if i == cur.Line {
				col = cur.Column
			}
			b.WriteString(m.decorate(m.buffer.Line(i), col))
			b.WriteByte('\n')
		}
	}

	if m.preview {
		b.WriteString("\nPreview\n")
		b.WriteString(m.styles.preview.Render(strings.TrimRight(m.previewHTML, "\n")))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n! ")
		b.WriteString(m.styles.errorText.Render(m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

// decorate styles recognised timestamps and bare clocks in line and draws the
// caret at column col (-1 for none).
func (m Model) decorate(line string, col int) string {
	runes := []rune(line)
	marks := classify(line, len(runes))

	var b strings.Builder
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && marks[i] == marks[start] && i != col && start != col {
			continue
		}
		seg := string(runes[start:i])
		if start == col {
			b.WriteString(m.styles.cursor.Render(seg))
		} else {
			b.WriteString(m.styleFor(marks[start]).Render(seg))
		}
		start = i
	}
	if col >= len(runes) {
		b.WriteString(m.styles.cursor.Render(" "))
	}
	return b.String()
}

func (m Model) styleFor(h highlight) lipgloss.Style {
	switch h {
	case stampRun:
		return m.styles.timestamp
	case clockRun:
		return m.styles.clock
	default:
		return lipgloss.NewStyle()
	}
}

// classify marks every rune of line as part of a timestamp, a bare clock, or
// plain text.
func classify(line string, n int) []highlight {
	marks := make([]highlight, n)

	for _, c := range timestamp.Clocks(line) {
		for i := c.Start; i < c.End() && i < n; i++ {
			marks[i] = clockRun
		}
	}

	// Occurrence offsets are bytes; delimiters are ASCII so they sit on rune
	// boundaries.
	for _, occ := range timestamp.Find(line) {
		from := utf8.RuneCountInString(line[:occ.Start])
		to := from + utf8.RuneCountInString(line[occ.Start:occ.End])
		for i := from; i < to && i < n; i++ {
			marks[i] = stampRun
		}
	}
	return marks
}
