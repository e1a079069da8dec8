package timestamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wrappedSat = `<span class="org-timestamp">2025-06-01 Sat <span class="org-timestamp-time">09:58</span></span>`

func TestRewrite_Encodings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"literal brackets", "<2025-06-01 Sat 09:58>"},
		{"entity brackets", "&lt;2025-06-01 Sat 09:58&gt;"},
		{"entity open literal close", "&lt;2025-06-01 Sat 09:58>"},
		{"literal open entity close", "<2025-06-01 Sat 09:58&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, wrappedSat, Rewrite(tt.input))
		})
	}
}

func TestRewrite_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "time only",
			input: "&lt;09:58&gt;",
			want:  `<span class="org-timestamp"><span class="org-timestamp-time">09:58</span></span>`,
		},
		{
			name:  "time only range",
			input: "&lt;10:00-10:35&gt;",
			want:  `<span class="org-timestamp"><span class="org-timestamp-time">10:00-10:35</span></span>`,
		},
		{
			name:  "dated range",
			input: "&lt;2025-06-01 Sun 10:00-10:35&gt;",
			want:  `<span class="org-timestamp">2025-06-01 Sun <span class="org-timestamp-time">10:00-10:35</span></span>`,
		},
		{
			name:  "linked date keeps anchor attributes",
			input: `&lt;<a data-href="2025-06-01" href="2025-06-01" class="internal-link" target="_blank" rel="noopener">2025-06-01</a> Sun 09:58&gt;`,
			want:  `<span class="org-timestamp"><a data-href="2025-06-01" href="2025-06-01" class="internal-link" target="_blank" rel="noopener">2025-06-01</a> Sun <span class="org-timestamp-time">09:58</span></span>`,
		},
		{
			name:  "bare anchor",
			input: `<<a>2025-06-01</a> Sun 09:58>`,
			want:  `<span class="org-timestamp"><a>2025-06-01</a> Sun <span class="org-timestamp-time">09:58</span></span>`,
		},
		{
			name:  "several occurrences with surrounding text",
			input: "Standup &lt;09:00&gt; then review &lt;2025-06-02 Mon 14:30&gt;.",
			want: `Standup <span class="org-timestamp"><span class="org-timestamp-time">09:00</span></span> then review ` +
				`<span class="org-timestamp">2025-06-02 Mon <span class="org-timestamp-time">14:30</span></span>.`,
		},
		{
			name:  "stray bracket before occurrence",
			input: "&lt;&lt;09:58&gt;&gt;",
			want:  `&lt;<span class="org-timestamp"><span class="org-timestamp-time">09:58</span></span>&gt;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.input))
		})
	}
}

func TestRewrite_MalformedLeftUntouched(t *testing.T) {
	inputs := []string{
		"&lt;2025-6-01 Sun 09:58&gt;",
		"&lt;2025-06-01 Sun 09:58",
		"2025-06-01 Sun 09:58&gt;",
		"&lt;2025-02-30 Sun 09:58&gt;",
		"&lt;2025-06-01 Sunday 09:58&gt;",
		"&lt;2025-06-01 09:58&gt;",
		"&lt;24:00&gt;",
		"&lt;09:60&gt;",
		"&lt;9:58&gt;",
		"&lt;09:58-10&gt;",
		"&lt;09:58:00&gt;",
		`&lt;<a href="x">2025-06-01 Sun 09:58&gt;`,
		`&lt;<abbr>2025-06-01</abbr> Sun 09:58&gt;`,
		`&lt;<a title="&lt;x">2025-06-01</a> Sun 09:58&gt;`,
		"<",
		"&lt;",
		"",
	}

	for _, in := range inputs {
		assert.Equal(t, in, Rewrite(in), "input %q", in)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	inputs := []string{
		"<2025-06-01 Sat 09:58>",
		"&lt;2025-06-01 Sat 09:58&gt; and &lt;10:00-10:35&gt;",
		`&lt;<a href="2025-06-01" class="internal-link">2025-06-01</a> Sun 09:58&gt;`,
		`&lt;<a href="y">2025-06-01</a> Sun &lt;09:58&gt;`,
		"&lt;&lt;09:58&gt;&gt;",
		"plain text without timestamps",
	}

	for _, in := range inputs {
		once := Rewrite(in)
		assert.Equal(t, once, Rewrite(once), "input %q", in)
	}
}

func TestRewrite_NoMatchReturnsInput(t *testing.T) {
	in := `<p>Nothing to see <em>here</em> at 09:58.</p>`
	assert.Equal(t, in, Rewrite(in))
}

func TestFind_Offsets(t *testing.T) {
	in := "a &lt;09:58&gt; b <2025-06-01 Sun 10:00-11:00> c"

	found := Find(in)
	require.Len(t, found, 2)

	first := found[0]
	assert.Equal(t, 2, first.Start)
	assert.Equal(t, 15, first.End)
	assert.Equal(t, "&lt;09:58&gt;", in[first.Start:first.End])
	assert.False(t, first.HasDate())
	assert.False(t, first.IsRange())

	second := found[1]
	assert.Equal(t, "<2025-06-01 Sun 10:00-11:00>", in[second.Start:second.End])
	assert.Equal(t, "2025-06-01", second.Date)
	assert.Equal(t, "Sun", second.Weekday)
	assert.Equal(t, "10:00-11:00", second.Span)
	assert.True(t, second.IsRange())
	assert.False(t, second.HasAnchor())
}

func TestToken_HTMLMatchesRewrite(t *testing.T) {
	found := Find("&lt;2025-06-01 Sat 09:58&gt;")
	require.Len(t, found, 1)
	assert.Equal(t, wrappedSat, found[0].HTML())
}
