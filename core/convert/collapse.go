package convert

import (
	"slices"
	"strings"
)

// paragraphBreak is the fragment emitted for <p>.
const paragraphBreak = "\n"

// Collapse merges every run of adjacent fragments that are exactly a
// single newline into one newline. Newlines inside longer fragments are
// left alone, and empty fragments are discarded. Collapse(Collapse(f))
// equals Collapse(f).
func Collapse(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for i := len(fragments) - 1; i >= 0; i-- {
		f := fragments[i]
		if f == "" {
			continue
		}
		if f == paragraphBreak && len(out) > 0 && out[len(out)-1] == paragraphBreak {
			continue
		}
		out = append(out, f)
	}
	slices.Reverse(out)
	return out
}

// Join collapses fragments and concatenates them with no separator.
func Join(fragments []string) string {
	return strings.Join(Collapse(fragments), "")
}
