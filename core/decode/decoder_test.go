package decode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"", "utf-8"},
		{"UTF-8", "utf-8"},
		{"utf8", "utf-8"},
		{" latin1 ", "windows-1252"},
		{"Shift_JIS", "shift_jis"},
		{"AUTO", AutoEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Canonical(tt.label)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCanonical_Unknown(t *testing.T) {
	_, err := Canonical("no-such-charset")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestParse_Encodings(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		encoding    string
		contentType string
		expected    string
	}{
		{"utf-8", []byte("<p>café</p>"), "UTF-8", "", "café"},
		{"latin1 override", []byte("<p>caf\xe9</p>"), "iso-8859-1", "", "café"},
		{"koi8-r override", []byte("<p>\xf0\xd2\xc9\xd7\xc5\xd4</p>"), "koi8-r", "", "Привет"},
		{"auto from content type", []byte("<p>caf\xe9</p>"), AutoEncoding, "text/html; charset=windows-1252", "café"},
		{"auto from meta", []byte(`<meta charset="windows-1252"><p>caf` + "\xe9</p>"), AutoEncoding, "", "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(bytes.NewReader(tt.input), tt.encoding, tt.contentType)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := text(doc); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParse_NoscriptIsParsedAsElements(t *testing.T) {
	doc, err := ParseString(`<noscript><p>x</p></noscript>`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	var found bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" && n.Parent != nil && n.Parent.Data == "noscript" {
			found = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if !found {
		t.Error("expected <p> element inside <noscript>")
	}
}
