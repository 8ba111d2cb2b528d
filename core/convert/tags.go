package convert

import "fmt"

// Kind is the conversion behaviour bound to a tag name.
type Kind int

const (
	// KindUnhandled is the default for tag names absent from the table.
	KindUnhandled Kind = iota
	// KindNotImplemented marks standard tags with no Markdown conversion yet.
	KindNotImplemented
	// KindIgnore emits nothing but still visits the element's children.
	KindIgnore
	// KindDrop emits nothing and skips the whole subtree.
	KindDrop
	KindHeading
	KindParagraph
	KindLink
)

var kindNames = map[Kind]string{
	KindUnhandled:      "unhandled",
	KindNotImplemented: "not-implemented",
	KindIgnore:         "ignore",
	KindDrop:           "drop",
	KindHeading:        "heading",
	KindParagraph:      "paragraph",
	KindLink:           "link",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Handler is a tag's resolved conversion behaviour. Level is only
// meaningful for KindHeading (1..6).
type Handler struct {
	Kind  Kind
	Level int
}

func (h Handler) String() string {
	if h.Kind == KindHeading {
		return fmt.Sprintf("heading(%d)", h.Level)
	}
	return h.Kind.String()
}

var (
	ignore         = Handler{Kind: KindIgnore}
	drop           = Handler{Kind: KindDrop}
	notImplemented = Handler{Kind: KindNotImplemented}
	unhandled      = Handler{Kind: KindUnhandled}
)

// DoctypeTag is the pseudo-tag under which document type declarations
// are dispatched.
const DoctypeTag = "!doctype"

// tagTable maps every known lowercase tag name to its handler. It is
// read-only after package initialisation.
var tagTable = map[string]Handler{
	DoctypeTag: drop,

	// converted
	"h1": {Kind: KindHeading, Level: 1},
	"h2": {Kind: KindHeading, Level: 2},
	"h3": {Kind: KindHeading, Level: 3},
	"h4": {Kind: KindHeading, Level: 4},
	"h5": {Kind: KindHeading, Level: 5},
	"h6": {Kind: KindHeading, Level: 6},
	"p":  {Kind: KindParagraph},
	"a":  {Kind: KindLink},

	// structural containers with no Markdown equivalent
	"body":     ignore,
	"center":   ignore,
	"colgroup": ignore,
	"dir":      ignore,
	"figure":   ignore,
	"font":     ignore,
	"frameset": ignore,
	"hgroup":   ignore,
	"html":     ignore,
	"multicol": ignore,
	"nav":      ignore,
	"noscript": ignore,
	"search":   ignore,
	"slot":     ignore,

	// non-content: metadata, scripting, embedded media, forms
	"applet":      drop,
	"area":        drop,
	"audio":       drop,
	"base":        drop,
	"basefont":    drop,
	"bgsound":     drop,
	"button":      drop,
	"canvas":      drop,
	"command":     drop,
	"datagrid":    drop,
	"datalist":    drop,
	"embed":       drop,
	"eventsource": drop,
	"fieldset":    drop,
	"form":        drop,
	"frame":       drop,
	"head":        drop,
	"iframe":      drop,
	"input":       drop,
	"isindex":     drop,
	"keygen":      drop,
	"label":       drop,
	"legend":      drop,
	"link":        drop,
	"map":         drop,
	"math":        drop,
	"menu":        drop,
	"menuitem":    drop,
	"meta":        drop,
	"meter":       drop,
	"nextid":      drop,
	"noembed":     drop,
	"noframes":    drop,
	"object":      drop,
	"optgroup":    drop,
	"option":      drop,
	"output":      drop,
	"param":       drop,
	"picture":     drop,
	"progress":    drop,
	"script":      drop,
	"select":      drop,
	"source":      drop,
	"spacer":      drop,
	"style":       drop,
	"svg":         drop,
	"template":    drop,
	"textarea":    drop,
	"video":       drop,

	// recognised, conversion pending
	"abbr":       notImplemented,
	"acronym":    notImplemented,
	"address":    notImplemented,
	"article":    notImplemented,
	"aside":      notImplemented,
	"b":          notImplemented,
	"bdi":        notImplemented,
	"bdo":        notImplemented,
	"big":        notImplemented,
	"blink":      notImplemented,
	"blockquote": notImplemented,
	"br":         notImplemented,
	"caption":    notImplemented,
	"cite":       notImplemented,
	"code":       notImplemented,
	"col":        notImplemented,
	"data":       notImplemented,
	"dd":         notImplemented,
	"del":        notImplemented,
	"details":    notImplemented,
	"dfn":        notImplemented,
	"dialog":     notImplemented,
	"div":        notImplemented,
	"dl":         notImplemented,
	"dt":         notImplemented,
	"em":         notImplemented,
	"figcaption": notImplemented,
	"footer":     notImplemented,
	"header":     notImplemented,
	"hr":         notImplemented,
	"i":          notImplemented,
	"img":        notImplemented,
	"ins":        notImplemented,
	"kbd":        notImplemented,
	"li":         notImplemented,
	"listing":    notImplemented,
	"main":       notImplemented,
	"mark":       notImplemented,
	"marquee":    notImplemented,
	"nobr":       notImplemented,
	"ol":         notImplemented,
	"plaintext":  notImplemented,
	"pre":        notImplemented,
	"q":          notImplemented,
	"rb":         notImplemented,
	"rp":         notImplemented,
	"rt":         notImplemented,
	"rtc":        notImplemented,
	"ruby":       notImplemented,
	"s":          notImplemented,
	"samp":       notImplemented,
	"section":    notImplemented,
	"small":      notImplemented,
	"span":       notImplemented,
	"strike":     notImplemented,
	"strong":     notImplemented,
	"sub":        notImplemented,
	"summary":    notImplemented,
	"sup":        notImplemented,
	"table":      notImplemented,
	"tbody":      notImplemented,
	"td":         notImplemented,
	"tfoot":      notImplemented,
	"th":         notImplemented,
	"thead":      notImplemented,
	"time":       notImplemented,
	"title":      notImplemented,
	"tr":         notImplemented,
	"track":      notImplemented,
	"tt":         notImplemented,
	"u":          notImplemented,
	"ul":         notImplemented,
	"var":        notImplemented,
	"wbr":        notImplemented,
	"xmp":        notImplemented,
}

// Lookup resolves a lowercase tag name. Names absent from the table
// resolve to the Unhandled handler.
func Lookup(tag string) Handler {
	if h, ok := tagTable[tag]; ok {
		return h
	}
	return unhandled
}

// Known reports whether tag has an entry in the dispatch table.
func Known(tag string) bool {
	_, ok := tagTable[tag]
	return ok
}
