// Package render — JSON renderer.
// Builds a report from the Markdown, page metadata and converter
// diagnostics. Structure (headings, links, paragraphs) is read back from
// the Markdown with goldmark, so it reflects what a Markdown reader sees.
package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gaurav-prasanna/html2md/core"
	"github.com/gaurav-prasanna/html2md/core/convert"
	"github.com/gaurav-prasanna/html2md/core/links"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// JSONRenderer produces the JSON report.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{md: goldmark.New()}
}

// Render converts the conversion result and metadata into an indented JSON report.
func (r *JSONRenderer) Render(conv *core.Conversion, meta core.PageMetadata) ([]byte, error) {
	structure, err := r.structure(conv.Markdown, links.Base(meta.Source))
	if err != nil {
		return nil, err
	}

	diags := conv.Diagnostics
	if diags == nil {
		diags = []convert.Diagnostic{}
	}

	report := core.Report{
		Metadata:    meta,
		Markdown:    conv.Markdown,
		Structure:   structure,
		Diagnostics: diags,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// structure reads headings, links and paragraphs back from markdown.
// With a base URL, link destinations are also resolved and classified.
func (r *JSONRenderer) structure(markdown string, base *url.URL) (core.PageStructure, error) {
	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	s := core.PageStructure{
		Headings: []core.Heading{},
		Links:    []core.Link{},
	}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.Headings = append(s.Headings, core.Heading{
				Level: node.Level,
				Text:  plainText(node, src),
			})
		case *ast.Link:
			s.Links = append(s.Links, link(plainText(node, src), string(node.Destination), base))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			s.Paragraphs++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return core.PageStructure{}, fmt.Errorf("walking markdown: %w", err)
	}
	return s, nil
}

// plainText concatenates the literal text under n, dropping inline markup.
// Soft line breaks read as a single space.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func link(text, href string, base *url.URL) core.Link {
	l := core.Link{Text: text, Href: href}
	if base == nil {
		return l
	}
	l.Resolved = links.Resolve(href, base)
	if l.Resolved != "" {
		l.Internal = links.IsSameDomain(l.Resolved, base.Host)
		l.Asset = links.IsStaticAsset(l.Resolved)
	}
	return l
}
