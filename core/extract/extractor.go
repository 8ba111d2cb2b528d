// Package extract narrows a parsed document to the region that should be
// converted and reads page metadata from it.
// A CSS selector picks the conversion roots; without one the whole
// document is converted.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Scope returns the nodes matching selector, in document order.
// Matches nested inside another match are folded into the outer one so
// no element is converted twice. An empty selector returns the document.
func Scope(doc *html.Node, selector string) ([]*html.Node, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return []*html.Node{doc}, nil
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	matches := goquery.NewDocumentFromNode(doc).FindMatcher(sel).Nodes
	if len(matches) == 0 {
		return nil, fmt.Errorf("selector %q matched nothing", selector)
	}
	return outermost(matches), nil
}

// outermost drops every node that has an ancestor in nodes.
func outermost(nodes []*html.Node) []*html.Node {
	set := make(map[*html.Node]bool, len(nodes))
	for _, n := range nodes {
		set[n] = true
	}

	roots := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		nested := false
		for p := n.Parent; p != nil; p = p.Parent {
			if set[p] {
				nested = true
				break
			}
		}
		if !nested {
			roots = append(roots, n)
		}
	}
	return roots
}

// Metadata returns the document <title> and the lang attribute of <html>.
func Metadata(doc *html.Node) (title, lang string) {
	d := goquery.NewDocumentFromNode(doc)
	title = strings.TrimSpace(d.Find("head > title").First().Text())
	if title == "" {
		title = strings.TrimSpace(d.Find("title").First().Text())
	}
	lang = strings.TrimSpace(d.Find("html").First().AttrOr("lang", ""))
	return title, lang
}
