package render

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Pipeline renders Markdown notes to HTML and passes every eligible block
// through the registered hooks, the way a host applies post-processors.
type Pipeline struct {
	md     goldmark.Markdown
	hooks  []Hook
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	resolve func(target string) string
	logger  *slog.Logger
}

// WithLinkResolver maps [[target]] links to anchor destinations.
func WithLinkResolver(resolve func(target string) string) Option {
	return func(o *pipelineOptions) {
		o.resolve = resolve
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *pipelineOptions) {
		o.logger = logger
	}
}

// NewPipeline builds a pipeline with no hooks registered.
func NewPipeline(opts ...Option) *Pipeline {
	o := pipelineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&wikiLinks{resolve: o.resolve},
		),
	)

	return &Pipeline{md: md, logger: o.logger}
}

// AddRenderHook registers a hook. Hooks run in registration order.
func (p *Pipeline) AddRenderHook(hook Hook) {
	if hook == nil {
		return
	}
	p.hooks = append(p.hooks, hook)
}

// Hooks reports how many hooks are registered.
func (p *Pipeline) Hooks() int {
	return len(p.hooks)
}

// Render converts Markdown to HTML and post-processes it.
func (p *Pipeline) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out, _ := p.Process(buf.String())
	return out, nil
}

// Process applies the hooks to already-rendered HTML.
func (p *Pipeline) Process(doc string) (string, bool) {
	out, changed := Blocks(doc, p.hooks...)
	p.logger.Debug("post-processed rendered blocks", "bytes", len(doc), "hooks", len(p.hooks), "changed", changed)
	return out, changed
}
