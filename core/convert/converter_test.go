package convert

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gaurav-prasanna/html2md/core/decode"
	"golang.org/x/net/html"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := decode.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func convert(t *testing.T, src string) (string, []Diagnostic) {
	t.Helper()
	md, diags, err := ConvertNode(parse(t, src), DefaultOptions())
	if err != nil {
		t.Fatalf("ConvertNode: %v", err)
	}
	return md, diags
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading and paragraph with link",
			input:    `<h1>Title</h1><p>Hello <a href="http://x">world</a></p>`,
			expected: "# Title\n\nHello [world](http://x)",
		},
		{
			name:     "text after link stays in order",
			input:    `<p>see <a href="/a">this</a> page</p>`,
			expected: "\nsee [this](/a) page",
		},
		{
			name:     "adjacent empty paragraphs collapse",
			input:    `<p></p><p></p>`,
			expected: "\n",
		},
		{
			name:     "paragraph break between paragraphs",
			input:    `<p>one</p><p>two</p>`,
			expected: "\none\ntwo",
		},
		{
			name:     "head is dropped",
			input:    `<html><head><title>T</title><style>p{}</style></head><body><p>x</p></body></html>`,
			expected: "\nx",
		},
		{
			name:     "doctype is dropped",
			input:    `<!DOCTYPE html><p>x</p>`,
			expected: "\nx",
		},
		{
			name:     "script contributes nothing",
			input:    `<p>a</p><script>document.write("<h1>no</h1>")</script>`,
			expected: "\na",
		},
		{
			name:     "noscript content is visited",
			input:    `<noscript><p>enable js</p></noscript>`,
			expected: "\nenable js",
		},
		{
			name:     "unknown tag text is kept",
			input:    `<div><foo>bar</foo></div>`,
			expected: "bar",
		},
		{
			name:     "heading newline is not collapsed with paragraph",
			input:    `<h2>A</h2><p></p><p></p><h3>B</h3>`,
			expected: "## A\n\n### B\n",
		},
		{
			name: "pretty-printed document",
			input: "<!DOCTYPE html>\n<html>\n  <body>\n    <h1>Title</h1>\n" +
				"    <p>Hello <a href=\"http://x\">world</a></p>\n" +
				"    <p>\n      Second\n    </p>\n  </body>\n</html>\n",
			expected: "# Title\n\nHello [world](http://x)\nSecond\n",
		},
		{
			name:     "indentation before inline element is trimmed",
			input:    "<p>\n        <a href=\"/a\">a</a> and\n        <a href=\"/b\">b</a>\n</p>",
			expected: "\n[a](/a) and\n[b](/b)",
		},
		{
			name:     "spaces between inline elements are kept",
			input:    `<p><a href="/a">a</a> <a href="/b">b</a></p>`,
			expected: "\n[a](/a) [b](/b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := convert(t, tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvert_Headings(t *testing.T) {
	for level := 1; level <= 6; level++ {
		tag := "h" + string(rune('0'+level))
		src := "<" + tag + ">Some <b>bold</b> text</" + tag + ">"
		got, diags := convert(t, src)
		want := strings.Repeat("#", level) + " Some bold text\n"
		if got != want {
			t.Errorf("%s: got %q, want %q", tag, got, want)
		}
		// <b> sits inside the heading and must not be dispatched on its own.
		if len(diags) != 0 {
			t.Errorf("%s: expected no diagnostics, got %v", tag, diags)
		}
	}
}

func TestConvert_Links(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with href", `<a href="X">T</a>`, "[T](X)"},
		{"without href", `<a>T</a>`, "[T]()"},
		{"empty href", `<a href="">T</a>`, "[T]()"},
		{"nested markup", `<a href="/x"><span>in</span>ner</a>`, "[inner](/x)"},
		{"no text", `<a href="/x"></a>`, "[](/x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := convert(t, tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			if len(diags) != 0 {
				t.Errorf("expected no diagnostics, got %v", diags)
			}
		})
	}
}

func TestConvert_DropSubtree(t *testing.T) {
	got, diags := convert(t, `<form><foo>secret</foo><p>hidden</p><h1>gone</h1></form>`)
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	if len(diags) != 0 {
		t.Errorf("dropped descendants must not be visited, got %v", diags)
	}
}

func TestConvert_UnknownTagDiagnostic(t *testing.T) {
	got, diags := convert(t, `<div><foo>bar</foo></div>`)
	if !strings.Contains(got, "bar") {
		t.Errorf("expected output to keep %q, got %q", "bar", got)
	}

	unknown := Tags(diags, UnknownTag)
	if !slices.Equal(unknown, []string{"foo"}) {
		t.Fatalf("unknown tags: got %v, want [foo]", unknown)
	}
	pending := Tags(diags, NotYetImplemented)
	if !slices.Equal(pending, []string{"div"}) {
		t.Errorf("not implemented tags: got %v, want [div]", pending)
	}

	for _, d := range diags {
		if d.Tag == "foo" && d.Path != "html>body>div>foo" {
			t.Errorf("unexpected path %q", d.Path)
		}
	}
}

func TestConvert_DiagnosticsInDocumentOrder(t *testing.T) {
	_, diags := convert(t, `<section><em>a</em></section><zed></zed><span>b</span>`)
	var got []string
	for _, d := range diags {
		got = append(got, d.Tag)
	}
	want := []string{"section", "em", "zed", "span"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConvert_EmptyDocument(t *testing.T) {
	t.Run("bare document node", func(t *testing.T) {
		c, err := New(&html.Node{Type: html.DocumentNode}, DefaultOptions())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := c.Convert(); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("parsed empty input", func(t *testing.T) {
		got, diags := convert(t, "")
		if got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
		if len(diags) != 0 {
			t.Errorf("expected no diagnostics, got %v", diags)
		}
	})

	t.Run("empty elements", func(t *testing.T) {
		got, _ := convert(t, `<div></div><span></span><h1></h1>`)
		if got != "# \n" {
			t.Errorf("got %q", got)
		}
	})
}

func TestConvert_Deterministic(t *testing.T) {
	doc := parse(t, `<h1>A</h1><p>x <a href="/y">y</a></p><div><foo>z</foo></div>`)
	c, err := New(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := c.Convert()
	firstDiags := c.Diagnostics()
	for i := 0; i < 3; i++ {
		if got := c.Convert(); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
		if got := c.Diagnostics(); len(got) != len(firstDiags) {
			t.Fatalf("run %d: diagnostics accumulated across calls: %d vs %d", i, len(got), len(firstDiags))
		}
	}
}

func TestNew_NilDocument(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	if !errors.Is(err, ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", err)
	}
}

func TestNew_DefaultsEncoding(t *testing.T) {
	c, err := New(&html.Node{Type: html.DocumentNode}, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Options().Encoding != decode.DefaultEncoding {
		t.Errorf("encoding: got %q", c.Options().Encoding)
	}
}

func TestFromBytes_EncodingOverride(t *testing.T) {
	src := []byte("<p>caf\xe9</p>")
	c, err := FromBytes(src, Options{Encoding: "windows-1252"})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got := c.Convert(); got != "\ncafé" {
		t.Errorf("got %q", got)
	}
}

func TestFromBytes_UnknownEncoding(t *testing.T) {
	_, err := FromBytes([]byte("<p>x</p>"), Options{Encoding: "klingon-8"})
	if !errors.Is(err, decode.ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestConvert_LogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	c, err := New(parse(t, `<div><foo>bar</foo></div>`), Options{Logger: logger})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Convert()

	out := buf.String()
	if !strings.Contains(out, "undefined tag") || !strings.Contains(out, "foo") {
		t.Errorf("expected an undefined tag warning for foo, got:\n%s", out)
	}
	if !strings.Contains(out, "tag not implemented") || !strings.Contains(out, "div") {
		t.Errorf("expected a not implemented entry for div, got:\n%s", out)
	}
}

func TestConvert_Fragments(t *testing.T) {
	c, err := New(parse(t, `<p></p><p>x</p>`), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	md := c.Convert()

	frags := c.Fragments()
	want := []string{"\n", "\n", "x"}
	if !slices.Equal(frags, want) {
		t.Fatalf("fragments: got %q, want %q", frags, want)
	}
	if md != "\nx" {
		t.Errorf("got %q", md)
	}
}

func TestNew_NilLoggerDiscards(t *testing.T) {
	c, err := New(parse(t, `<div><foo>bar</foo></div>`), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.logger == nil {
		t.Fatal("expected a discarding logger, got nil")
	}
	if got := c.Convert(); got != "bar" {
		t.Errorf("got %q", got)
	}
	if len(c.Diagnostics()) != 2 {
		t.Errorf("diagnostics must still be recorded, got %v", c.Diagnostics())
	}
}
