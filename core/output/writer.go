// Package output handles file naming and writing for html2md outputs.
// Output goes to stdout by default. A file target is written as given;
// a directory target gets a name derived from the source
// (e.g. https://example.com/docs/intro → example_com_docs_intro.md).
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to stdout, a file, or a directory.
type Writer struct {
	Target string
	stdout io.Writer
}

// New creates a Writer. An empty target or "-" means stdout.
func New(target string) *Writer {
	return &Writer{Target: target, stdout: os.Stdout}
}

// SetStdout redirects stdout output, e.g. to a cobra command's writer.
func (w *Writer) SetStdout(out io.Writer) {
	w.stdout = out
}

// Write stores data for source and returns where it went ("-" for stdout).
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.Target == "" || w.Target == "-" {
		if _, err := w.stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "-", nil
	}

	path := w.Target
	if isDir(path) {
		path = filepath.Join(path, filenameFromSource(source)+ext)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

func isDir(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// filenameFromSource converts a URL or file path into a flat base name.
// Example: https://example.com/docs/intro → example_com_docs_intro
// Example: pages/about.html → about
func filenameFromSource(source string) string {
	if source == "" || source == "-" {
		return "stdin"
	}

	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		base := filepath.Base(source)
		return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(strings.TrimSuffix(seg, filepath.Ext(seg))))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
