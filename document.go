package pretty

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindText
	kindLine
	kindConcat
	kindNest
	kindGroup
)

// Doc is an immutable document describing the possible layouts of some
// text. The zero value is the empty document.
//
// Docs are built with the constructors in this package and never change
// afterwards, so a Doc may be shared freely between documents and rendered
// concurrently at different widths.
type Doc struct {
	kind kind

	// text holds the literal of a Text node, or the flat rendering of a
	// Line node (" " for Line, "" for Softline).
	text string

	// indent is the increment applied by a Nest node.
	indent int

	left, right *Doc

	// width is the flat rendering width of the subtree, saturating at
	// math.MaxInt.
	width int

	// hard reports whether the subtree contains a hard line, which makes
	// it impossible to flatten.
	hard bool

	// soft reports whether the subtree contains a line that can flatten.
	// A group without one has nothing to decide.
	soft bool
}

var (
	line     = Doc{kind: kindLine, text: " ", width: 1, soft: true}
	softline = Doc{kind: kindLine, soft: true}
	hardline = Doc{kind: kindLine, hard: true}
)

// Empty returns the document that renders to nothing.
func Empty() Doc { return Doc{} }

// Text returns a literal run of text.
//
// Text should not contain line breaks. When it does, each "\n" (or "\r\n")
// becomes a [Hardline], so Text("a\nb") equals
// Concat(Text("a"), Hardline(), Text("b")).
func Text(s string) Doc {
	if s == "" {
		return Doc{}
	}
	if !strings.ContainsRune(s, '\n') {
		return Doc{kind: kindText, text: s, width: textWidth(s)}
	}
	parts := strings.Split(s, "\n")
	docs := make([]Doc, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			docs = append(docs, hardline)
		}
		docs = append(docs, Text(strings.TrimSuffix(p, "\r")))
	}
	return Concat(docs...)
}

// Line returns a soft break. It renders as a single space when its
// enclosing group is flat, and as a newline followed by the current
// indentation otherwise.
func Line() Doc { return line }

// Softline returns a break that renders as nothing when flat and as a
// newline followed by the current indentation otherwise.
func Softline() Doc { return softline }

// Hardline returns a break that can never be flattened. Every group that
// contains it renders broken, regardless of width.
func Hardline() Doc { return hardline }

// Concat returns the documents rendered one after the other. Empty
// documents are dropped, so Concat() and Concat(Empty()) are both empty.
func Concat(docs ...Doc) Doc {
	// Build right-nested so the layout work list stays shallow while
	// walking a long sequence.
	var out Doc
	for i := len(docs) - 1; i >= 0; i-- {
		out = concat(docs[i], out)
	}
	return out
}

func concat(a, b Doc) Doc {
	switch {
	case a.kind == kindEmpty:
		return b
	case b.kind == kindEmpty:
		return a
	}
	return Doc{
		kind:  kindConcat,
		left:  &a,
		right: &b,
		width: addWidth(a.width, b.width),
		hard:  a.hard || b.hard,
		soft:  a.soft || b.soft,
	}
}

// Nest increases by n the indentation of every broken line inside d.
// Nested calls add up. A negative n removes indentation; the effective
// indentation never drops below zero.
func Nest(n int, d Doc) Doc {
	if n == 0 || d.kind == kindEmpty {
		return d
	}
	return Doc{kind: kindNest, indent: n, left: &d, width: d.width, hard: d.hard, soft: d.soft}
}

// Group marks d as a choice point: it is rendered flat, with every line
// inside collapsed, when that fits in the remaining width, and broken
// otherwise. A group containing a [Hardline] always renders broken.
func Group(d Doc) Doc {
	switch d.kind {
	case kindEmpty, kindGroup:
		return d
	}
	return Doc{kind: kindGroup, left: &d, width: d.width, hard: d.hard, soft: d.soft}
}

// Append returns d followed by others.
func (d Doc) Append(others ...Doc) Doc {
	return concat(d, Concat(others...))
}

// Nest is shorthand for [Nest](n, d).
func (d Doc) Nest(n int) Doc { return Nest(n, d) }

// Group is shorthand for [Group](d).
func (d Doc) Group() Doc { return Group(d) }

// IsEmpty reports whether d renders to nothing in every layout.
func (d Doc) IsEmpty() bool { return d.kind == kindEmpty }

// Flattenable reports whether d can be rendered on a single line, that is,
// whether it contains no hard line.
func (d Doc) Flattenable() bool { return !d.hard }

// FlatWidth returns the width of d rendered flat. The result is only
// meaningful when d is [Doc.Flattenable].
func (d Doc) FlatWidth() int { return d.width }

// cells measures East Asian ambiguous runes as narrow whatever the locale,
// so a layout depends only on the document and the width.
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// textWidth returns the number of terminal cells s occupies. Grapheme
// clusters that runewidth reports as zero width fall back to uniseg.
func textWidth(s string) int {
	w := cells.StringWidth(s)
	if w == 0 {
		w = uniseg.StringWidth(s)
	}
	return w
}

func addWidth(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
