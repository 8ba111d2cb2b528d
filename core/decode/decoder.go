// Package decode turns raw markup bytes into a parsed HTML element tree.
// The declared encoding is applied before parsing; "auto" sniffs it from
// the byte order mark, <meta charset> and the transport content type.
package decode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const (
	// DefaultEncoding is used when no override is given.
	DefaultEncoding = "UTF-8"
	// AutoEncoding selects charset detection instead of a fixed label.
	AutoEncoding = "auto"
)

// ErrUnknownEncoding is returned for labels outside the WHATWG encoding list.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Canonical validates an encoding label and returns its canonical name.
// An empty label means DefaultEncoding.
func Canonical(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEncoding
	}
	if strings.EqualFold(label, AutoEncoding) {
		return AutoEncoding, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return name, nil
}

// Parse decodes r using the given encoding label and parses the result.
// contentType is only consulted when encoding is AutoEncoding.
func Parse(r io.Reader, encoding, contentType string) (*html.Node, error) {
	name, err := Canonical(encoding)
	if err != nil {
		return nil, err
	}

	var src io.Reader
	switch name {
	case AutoEncoding:
		src, err = charset.NewReader(r, contentType)
		if err != nil {
			return nil, fmt.Errorf("detecting encoding: %w", err)
		}
	case "utf-8":
		src = r
	default:
		enc, _ := htmlindex.Get(name)
		src = transform.NewReader(r, enc.NewDecoder())
	}

	// Scripting off so <noscript> content parses as elements rather than raw text.
	doc, err := html.ParseWithOptions(src, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// ParseString parses an already-decoded UTF-8 string.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s), DefaultEncoding, "")
}
