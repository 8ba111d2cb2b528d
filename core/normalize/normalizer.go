// Package normalize implements the Engine interface.
// It turns parsed HTML into Markdown, the canonical format for all
// downstream renderers. Two engines are available: the built-in tag
// converter and a full CommonMark converter.
package normalize

import (
	"bytes"
	"fmt"
	"sort"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/html2md/core"
	"github.com/gaurav-prasanna/html2md/core/convert"
	"golang.org/x/net/html"
)

const (
	// EngineTags is the built-in tag-dispatch converter.
	EngineTags = "html2md"
	// EngineCommonMark delegates to html-to-markdown.
	EngineCommonMark = "commonmark"
)

var engines = map[string]func(convert.Options) core.Engine{
	EngineTags:       func(opts convert.Options) core.Engine { return &TagEngine{opts: opts} },
	EngineCommonMark: func(convert.Options) core.Engine { return &CommonMarkEngine{} },
}

// Engines lists the available engine names.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the engine registered under name.
func New(name string, opts convert.Options) (core.Engine, error) {
	if name == "" {
		name = EngineTags
	}
	mk, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (available: %v)", name, Engines())
	}
	return mk(opts), nil
}

// TagEngine runs the tag-dispatch converter over each root.
type TagEngine struct {
	opts convert.Options
}

func (e *TagEngine) Name() string { return EngineTags }

// Convert converts the roots in order. Fragments from all roots share a
// single buffer, so paragraph breaks collapse across root boundaries.
func (e *TagEngine) Convert(nodes []*html.Node) (*core.Conversion, error) {
	var (
		fragments []string
		diags     []convert.Diagnostic
	)
	for _, n := range nodes {
		c, err := convert.New(n, e.opts)
		if err != nil {
			return nil, err
		}
		c.Convert()
		fragments = append(fragments, c.Fragments()...)
		diags = append(diags, c.Diagnostics()...)
	}
	return &core.Conversion{
		Markdown:    convert.Join(fragments),
		Diagnostics: diags,
	}, nil
}

// CommonMarkEngine converts with html-to-markdown. It reports no diagnostics.
type CommonMarkEngine struct{}

func (e *CommonMarkEngine) Name() string { return EngineCommonMark }

// Convert renders the roots back to HTML and converts the markup.
func (e *CommonMarkEngine) Convert(nodes []*html.Node) (*core.Conversion, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if n == nil {
			return nil, convert.ErrNilDocument
		}
		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("rendering HTML: %w", err)
		}
	}

	markdown, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return &core.Conversion{Markdown: markdown}, nil
}
