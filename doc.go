// Package pretty lays out structured text within a maximum line width.
//
// A [Doc] describes every way some text may be laid out. It is built from a
// small set of primitives:
//
//   - [Empty] renders nothing
//   - [Text] is a literal run of characters
//   - [Line] is a break that becomes a space when flat
//   - [Concat] places documents one after the other
//   - [Nest] indents the broken lines of a document
//   - [Group] lets a document render flat when it fits
//
// Everything else is derived from these: [Softline] and [Hardline], the
// list combinators [Sep], [HSep], [VSep], [Fill] and [Punctuate], and the
// bracketed list [EncloseSep].
//
// # Rendering
//
// [Render] returns the text of a document laid out for a width; [Write]
// streams it to an [io.Writer]:
//
//	doc := pretty.Group(pretty.Concat(pretty.Text("hello"), pretty.Line(), pretty.Text("world")))
//	pretty.Render(doc, 80) // "hello world"
//	pretty.Render(doc, 5)  // "hello\nworld"
//
// Each group is decided on its own when the layout reaches it: it renders
// flat when its content, and whatever follows it up to the next line
// break, fits in the remaining width. An outer group that breaks does not
// force the groups inside it to break. A group that contains a [Hardline]
// always breaks. Text wider than the line is never split.
//
// A width of zero or less breaks every group that contains a line.
//
// [Layout] exposes the resolved layout as a sequence of [Instruction]s for
// callers that write to something other than a byte stream.
//
// The layout runs in time linear in the size of the document and keeps
// working state proportional to its nesting depth. Documents are immutable
// and may be rendered concurrently.
//
// # Configuration
//
// Rendering takes functional options ([WithColumn], [WithTrimTrailing],
// [WithLogger]) or a [Config], which can be loaded from YAML with
// [LoadConfig].
//
// # Data
//
// [FromValue] and [FromNode] turn decoded data into documents, so nested
// maps and slices print as compact {key: value} and [a, b] forms that
// break as needed.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig] — a configuration that cannot be used for rendering
//   - [ErrUnsupportedNode] — a YAML node with no document form
//   - [ErrNilWriter] — [Write] called without a writer
//
// Errors returned by the writer are returned unchanged.
package pretty
