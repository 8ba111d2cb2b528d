// Package core defines the pipeline interfaces for html2md.
// Each stage of the pipeline is a small, testable interface:
// fetch → decode → (scope) → convert → render → write.
package core

import (
	"context"

	"github.com/gaurav-prasanna/html2md/core/convert"
	"golang.org/x/net/html"
)

// FetchResult holds the raw markup and transport metadata of a source.
type FetchResult struct {
	Source      string
	StatusCode  int
	ContentType string
	Body        []byte
}

// PageMetadata holds metadata taken from the source and the parsed page.
type PageMetadata struct {
	Source   string `json:"source"`
	Title    string `json:"title,omitempty"`
	Language string `json:"language,omitempty"`
	Encoding string `json:"encoding"`
	Engine   string `json:"engine"`
}

// Heading represents a single heading found in the Markdown output.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the Markdown output.
type Link struct {
	Text     string `json:"text"`
	Href     string `json:"href"`
	Resolved string `json:"resolved,omitempty"`
	Internal bool   `json:"internal,omitempty"`
	Asset    bool   `json:"asset,omitempty"`
}

// PageStructure holds structural information parsed back from the output.
type PageStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	Paragraphs int       `json:"paragraphs"`
}

// Conversion is the result of converting one document.
type Conversion struct {
	Markdown    string
	Diagnostics []convert.Diagnostic
}

// Report is the complete JSON output for a single document.
type Report struct {
	Metadata    PageMetadata         `json:"metadata"`
	Markdown    string               `json:"markdown"`
	Structure   PageStructure        `json:"structure"`
	Diagnostics []convert.Diagnostic `json:"diagnostics"`
}

// Fetcher retrieves the raw bytes of a source (URL or file path).
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Engine converts parsed HTML nodes into Markdown.
type Engine interface {
	Name() string
	Convert(nodes []*html.Node) (*Conversion, error)
}

// Renderer converts a conversion result (and metadata) into output bytes.
type Renderer interface {
	Render(conv *Conversion, meta PageMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
