package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRender(t *testing.T) {
	p := NewPipeline()
	p.AddRenderHook(TimestampHook)
	require.Equal(t, 1, p.Hooks())

	got, err := p.Render([]byte("Standup <09:00>\n"))
	require.NoError(t, err)
	assert.Equal(t, `<p>Standup <span class="org-timestamp"><span class="org-timestamp-time">09:00</span></span></p>`+"\n", got)
}

func TestPipelineRenderBlocks(t *testing.T) {
	src := strings.Join([]string{
		"## Review <2025-06-01 Sun 14:00-15:00>",
		"",
		"- call <09:30>",
		"",
		"```",
		"<09:45>",
		"```",
		"",
	}, "\n")

	p := NewPipeline()
	p.AddRenderHook(TimestampHook)

	got, err := p.Render([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, got, `<h2>Review <span class="org-timestamp">2025-06-01 Sun <span class="org-timestamp-time">14:00-15:00</span></span></h2>`)
	assert.Contains(t, got, `<li>call <span class="org-timestamp"><span class="org-timestamp-time">09:30</span></span></li>`)
	assert.Contains(t, got, "<pre><code>&lt;09:45&gt;\n</code></pre>")
}

func TestPipelineWikiLinkedStamp(t *testing.T) {
	p := NewPipeline(WithLinkResolver(func(target string) string {
		return "2025/" + target + ".md"
	}))
	p.AddRenderHook(TimestampHook)

	got, err := p.Render([]byte("<[[2025-06-01]] Sun 09:58>\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `<p><span class="org-timestamp"><a href="2025/2025-06-01.md"`), got)
	assert.Contains(t, got, `class="internal-link"`)
	assert.Contains(t, got, `>2025-06-01</a> Sun <span class="org-timestamp-time">09:58</span></span></p>`)
}

func TestPipelineWithoutHooks(t *testing.T) {
	p := NewPipeline()

	got, err := p.Render([]byte("Standup <09:00>\n"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Standup &lt;09:00&gt;</p>\n", got)
}

func TestPipelineIgnoresNilHook(t *testing.T) {
	p := NewPipeline()
	p.AddRenderHook(nil)
	assert.Equal(t, 0, p.Hooks())
}
