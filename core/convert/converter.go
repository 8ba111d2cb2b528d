// Package convert implements the tag-dispatch HTML to Markdown converter.
//
// A Converter walks a parsed element tree in document order. Each element
// is resolved through a flat tag table to a Handler; the handler appends
// zero or more fragments to the output buffer and tells the walk whether
// to descend into the element's children. After the walk the buffer is
// collapsed (adjacent paragraph breaks merged) and joined.
package convert

import (
	"bytes"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gaurav-prasanna/html2md/core/decode"
	"github.com/gaurav-prasanna/html2md/core/logger"
	"golang.org/x/net/html"
)

// ErrNilDocument is returned when no document tree is supplied.
var ErrNilDocument = errors.New("convert: nil document")

// Directive tells the walk what to do after an element is handled.
type Directive int

const (
	// Continue visits the element's children.
	Continue Directive = iota
	// SkipChildren excludes the element's whole subtree.
	SkipChildren
)

// Options configure a Converter. They are read once by New.
type Options struct {
	// Encoding is the character-encoding override applied by FromBytes.
	Encoding string
	// Logger receives tag diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns options with the UTF-8 encoding and no logger.
func DefaultOptions() Options {
	return Options{Encoding: decode.DefaultEncoding}
}

// Converter turns one document tree into Markdown. Convert may be
// called repeatedly; each call starts from an empty buffer. A Converter
// must not be used from multiple goroutines at once.
type Converter struct {
	root   *html.Node
	opts   Options
	logger *log.Logger

	out   []string
	diags []Diagnostic
	path  []string
}

// New creates a Converter for an already-parsed tree.
func New(root *html.Node, opts Options) (*Converter, error) {
	if root == nil {
		return nil, ErrNilDocument
	}
	if opts.Encoding == "" {
		opts.Encoding = decode.DefaultEncoding
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.Discard()
	}
	return &Converter{root: root, opts: opts, logger: lg}, nil
}

// FromBytes parses raw markup using opts.Encoding and returns a
// Converter for the resulting tree.
func FromBytes(data []byte, opts Options) (*Converter, error) {
	root, err := decode.Parse(bytes.NewReader(data), opts.Encoding, "")
	if err != nil {
		return nil, err
	}
	return New(root, opts)
}

// Options returns the options the Converter was built with.
func (c *Converter) Options() Options {
	return c.opts
}

// Convert walks the tree and returns the Markdown text.
func (c *Converter) Convert() string {
	c.out = c.out[:0]
	c.diags = nil
	c.path = c.path[:0]

	c.walk(c.root)
	return Join(c.out)
}

// Diagnostics returns the unconverted tags seen by the last Convert call,
// in document order.
func (c *Converter) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diags...)
}

// Fragments returns the raw buffer of the last Convert call, before collapsing.
func (c *Converter) Fragments() []string {
	return append([]string(nil), c.out...)
}

func (c *Converter) walk(n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		c.children(n)
	case html.DoctypeNode:
		c.enter(DoctypeTag)
		c.dispatch(Lookup(DoctypeTag), n)
		c.leave()
	case html.ElementNode:
		c.enter(n.Data)
		if c.dispatch(Lookup(n.Data), n) == Continue {
			c.children(n)
		}
		c.leave()
	case html.TextNode:
		// A bare text root owns itself.
		if n.Parent == nil {
			c.emit(n.Data)
		}
	}
}

// children visits the element children of n and emits the text it owns
// directly, keeping document order.
func (c *Converter) children(n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			c.emitText(ch.Data)
			continue
		}
		c.walk(ch)
	}
}

// emitText emits free text. Whitespace that only lays out the source
// (a run containing a line break) is not content, and indentation at the
// start of an output line is trimmed so it cannot start a code block.
func (c *Converter) emitText(s string) {
	if strings.TrimSpace(s) == "" && strings.ContainsAny(s, "\r\n") {
		return
	}
	if c.atLineStart() {
		s = strings.TrimLeft(s, " \t\r\n")
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 && strings.Trim(s[i+1:], " \t") == "" {
		s = s[:i+1]
	}
	c.emit(s)
}

func (c *Converter) atLineStart() bool {
	return len(c.out) == 0 || strings.HasSuffix(c.out[len(c.out)-1], "\n")
}

func (c *Converter) dispatch(h Handler, n *html.Node) Directive {
	switch h.Kind {
	case KindHeading:
		c.emit(strings.Repeat("#", h.Level) + " " + textOf(n) + "\n")
		return SkipChildren
	case KindParagraph:
		c.emit(paragraphBreak)
		return Continue
	case KindLink:
		href, _ := attr(n, "href")
		c.emit("[" + textOf(n) + "](" + href + ")")
		return SkipChildren
	case KindDrop:
		return SkipChildren
	case KindIgnore:
		return Continue
	case KindNotImplemented:
		c.report(NotYetImplemented, n)
		return Continue
	default:
		c.report(UnknownTag, n)
		return Continue
	}
}

func (c *Converter) report(kind DiagnosticKind, n *html.Node) {
	d := Diagnostic{Kind: kind, Tag: n.Data, Path: strings.Join(c.path, ">")}
	c.diags = append(c.diags, d)
	if kind == UnknownTag {
		c.logger.Warn("undefined tag", "tag", d.Tag, "path", d.Path)
		return
	}
	c.logger.Debug("tag not implemented", "tag", d.Tag, "path", d.Path)
}

func (c *Converter) emit(s string) {
	if s == "" {
		return
	}
	c.out = append(c.out, s)
}

func (c *Converter) enter(tag string) { c.path = append(c.path, tag) }

func (c *Converter) leave() { c.path = c.path[:len(c.path)-1] }

// ConvertNode is a convenience wrapper that converts root with opts and
// returns the Markdown together with the diagnostics.
func ConvertNode(root *html.Node, opts Options) (string, []Diagnostic, error) {
	c, err := New(root, opts)
	if err != nil {
		return "", nil, err
	}
	md := c.Convert()
	return md, c.Diagnostics(), nil
}
