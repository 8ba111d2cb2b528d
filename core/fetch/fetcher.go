// Package fetch implements the Fetcher interface.
// A source is either an http(s) URL, fetched with a GET request, or a
// path on the local filesystem ("-" reads standard input).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/html2md/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "html2md/1.0 (https://github.com/gaurav-prasanna/html2md)"
	maxBodyBytes     = 32 << 20
)

// ErrTooLarge is returned when a source exceeds the body size limit.
var ErrTooLarge = errors.New("source too large")

// SourceFetcher loads markup from URLs and files.
type SourceFetcher struct {
	client   *http.Client
	stdin    io.Reader
	maxBytes int64
}

// New creates a SourceFetcher with the given HTTP timeout.
// A timeout <= 0 uses the default of 30s.
func New(timeout time.Duration) *SourceFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SourceFetcher{
		client:   &http.Client{Timeout: timeout},
		stdin:    os.Stdin,
		maxBytes: maxBodyBytes,
	}
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch retrieves the raw bytes of source.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	switch {
	case source == "-":
		return f.read(source, f.stdin)
	case IsURL(source):
		return f.fetchURL(ctx, source)
	default:
		return f.fetchFile(source)
	}
}

func (f *SourceFetcher) fetchURL(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := f.readAll(rawURL, resp.Body)
	if err != nil {
		return nil, err
	}

	return &core.FetchResult{
		Source:      rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (f *SourceFetcher) fetchFile(path string) (*core.FetchResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	return f.read(path, file)
}

func (f *SourceFetcher) read(source string, r io.Reader) (*core.FetchResult, error) {
	body, err := f.readAll(source, r)
	if err != nil {
		return nil, err
	}
	return &core.FetchResult{Source: source, Body: body}, nil
}

// readAll reads r in full, failing rather than truncating past maxBytes.
func (f *SourceFetcher) readAll(source string, r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", source, ErrTooLarge, f.maxBytes)
	}
	return body, nil
}
