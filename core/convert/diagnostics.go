package convert

import "fmt"

// DiagnosticKind classifies a tag the converter saw but did not convert.
type DiagnosticKind int

const (
	// UnknownTag is a tag name absent from the dispatch table.
	UnknownTag DiagnosticKind = iota
	// NotYetImplemented is a recognised tag without a Markdown conversion.
	NotYetImplemented
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownTag:
		return "unknown tag"
	case NotYetImplemented:
		return "not implemented"
	default:
		return "unknown diagnostic"
	}
}

// MarshalText lets diagnostics render by name in JSON reports.
func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *DiagnosticKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case UnknownTag.String():
		*k = UnknownTag
	case NotYetImplemented.String():
		*k = NotYetImplemented
	default:
		return fmt.Errorf("unknown diagnostic kind %q", b)
	}
	return nil
}

// Diagnostic records one visited element whose tag produced no conversion.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	Tag  string         `json:"tag"`
	// Path is the chain of ancestor tags, e.g. "html>body>div>foo".
	Path string `json:"path"`
}

// Tags returns the tag names of diagnostics of the given kind, in order.
func Tags(diags []Diagnostic, kind DiagnosticKind) []string {
	var tags []string
	for _, d := range diags {
		if d.Kind == kind {
			tags = append(tags, d.Tag)
		}
	}
	return tags
}
