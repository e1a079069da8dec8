package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// InternalLinkClass marks anchors produced from [[target]] links.
const InternalLinkClass = "internal-link"

var (
	wikiOpen  = []byte("[[")
	wikiClose = []byte("]]")
)

// wikiLinks turns [[target]] into an anchor to target's note.
type wikiLinks struct {
	resolve func(target string) string
}

func (e *wikiLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		// Ahead of the standard link parser (200).
		util.Prioritized(&wikiLinkParser{resolve: e.resolve}, 199),
	))
}

type wikiLinkParser struct {
	resolve func(target string) string
}

func (p *wikiLinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *wikiLinkParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if !bytes.HasPrefix(line, wikiOpen) {
		return nil
	}
	rest := line[len(wikiOpen):]
	end := bytes.Index(rest, wikiClose)
	if end <= 0 {
		return nil
	}
	target := rest[:end]
	if bytes.ContainsAny(target, "[]\n") {
		return nil
	}

	dest := string(target)
	if p.resolve != nil {
		dest = p.resolve(dest)
	}

	link := ast.NewLink()
	link.Destination = []byte(dest)
	link.SetAttributeString("class", []byte(InternalLinkClass))
	link.SetAttributeString("data-href", append([]byte(nil), target...))

	start := seg.Start + len(wikiOpen)
	link.AppendChild(link, ast.NewTextSegment(text.NewSegment(start, start+end)))

	block.Advance(len(wikiOpen) + end + len(wikiClose))
	return link
}
