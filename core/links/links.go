// Package links resolves and classifies link destinations found in the
// converted Markdown, relative to the URL the document came from.
package links

import (
	"net/url"
	"path"
	"strings"
)

// staticExtensions are file extensions that point at assets, not pages.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// Base parses source as an absolute http(s) URL. It returns nil for
// file paths and anything else that cannot anchor relative links.
func Base(source string) *url.URL {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return u
}

// Resolve resolves href against base. Non-navigational destinations
// (mailto:, javascript:, tel:, bare fragments) and unparsable hrefs
// resolve to "". A nil base returns href unchanged.
func Resolve(href string, base *url.URL) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	for _, prefix := range []string{"mailto:", "javascript:", "tel:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return ""
		}
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return href
	}
	return base.ResolveReference(parsed).String()
}

// IsSameDomain checks if the given URL belongs to the specified host.
func IsSameDomain(rawURL string, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == host
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}
