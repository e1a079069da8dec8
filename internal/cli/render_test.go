package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCommandMarkdownFromStdin(t *testing.T) {
	mgr := newTempManager(t)

	cmd := newRenderCommand(context.Background(), mgr)
	cmd.SetIn(strings.NewReader("Standup <09:30>\n"))
	out := executeCommand(t, cmd)

	want := `<p>Standup <span class="org-timestamp"><span class="org-timestamp-time">09:30</span></span></p>` + "\n"
	assert.Equal(t, want, out)
}

func TestRenderCommandResolvesDayLinks(t *testing.T) {
	mgr := newTempManager(t)
	note := writeTempNote(t, "Call <[[2025-06-01]] Sun 09:58>\n")

	out := executeCommand(t, newRenderCommand(context.Background(), mgr), note)

	assert.Contains(t, out, `href="2025/2025-06-01.md"`)
	assert.Contains(t, out, `class="internal-link"`)
	assert.Contains(t, out, `>2025-06-01</a> Sun <span class="org-timestamp-time">09:58</span></span></p>`)
}

func TestRenderCommandHTMLInput(t *testing.T) {
	mgr := newTempManager(t)

	doc := "<ul><li>call &lt;09:30-10:00&gt;</li></ul><pre>&lt;11:00&gt;</pre>"
	cmd := newRenderCommand(context.Background(), mgr)
	cmd.SetIn(strings.NewReader(doc))
	out := executeCommand(t, cmd, "--html", "-")

	assert.Contains(t, out, `<li>call <span class="org-timestamp"><span class="org-timestamp-time">09:30-10:00</span></span></li>`)
	assert.Contains(t, out, "<pre>&lt;11:00&gt;</pre>")
}

func TestRenderCommandLeavesPlainNotesAlone(t *testing.T) {
	mgr := newTempManager(t)

	cmd := newRenderCommand(context.Background(), mgr)
	cmd.SetIn(strings.NewReader("<p>nothing at 25:00</p>"))
	out := executeCommand(t, cmd, "--html")

	assert.Equal(t, "<p>nothing at 25:00</p>", out)
	assert.NotContains(t, out, "org-timestamp")
}
