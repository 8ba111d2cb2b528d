package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// textOf concatenates the text nodes beneath n in document order.
// Subtrees whose tag resolves to Drop contribute nothing.
func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				if Lookup(c.Data).Kind == KindDrop {
					continue
				}
				collect(c)
			}
		}
	}
	collect(n)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
