package pretty

import (
	"fmt"
	"strings"
)

// Space returns a single space that never breaks.
func Space() Doc { return Text(" ") }

// Textf returns the formatted text, as with [fmt.Sprintf].
func Textf(format string, args ...any) Doc {
	return Text(fmt.Sprintf(format, args...))
}

// Str returns the text of v: its String method when v is a [fmt.Stringer],
// its %v formatting otherwise.
func Str(v any) Doc {
	if s, ok := v.(fmt.Stringer); ok {
		return Text(s.String())
	}
	return Text(fmt.Sprintf("%v", v))
}

// Enclose returns d between left and right.
func Enclose(left, right, d Doc) Doc {
	return Concat(left, d, right)
}

// Parens encloses d in parentheses.
func Parens(d Doc) Doc { return Enclose(Text("("), Text(")"), d) }

// Brackets encloses d in square brackets.
func Brackets(d Doc) Doc { return Enclose(Text("["), Text("]"), d) }

// Braces encloses d in curly braces.
func Braces(d Doc) Doc { return Enclose(Text("{"), Text("}"), d) }

// Quote encloses d in double quotes.
func Quote(d Doc) Doc { return Enclose(Text(`"`), Text(`"`), d) }

// Indent prefixes d with n spaces and nests its following lines by n, so
// the whole block is indented.
func Indent(n int, d Doc) Doc {
	if n <= 0 {
		return d
	}
	return Nest(n, Concat(Text(strings.Repeat(" ", n)), d))
}

// Words splits s on white space and fills the words into lines.
func Words(s string) Doc {
	fields := strings.Fields(s)
	docs := make([]Doc, len(fields))
	for i, f := range fields {
		docs[i] = Text(f)
	}
	return Fill(docs...)
}

// Reflow is an alias of [Words].
func Reflow(s string) Doc { return Words(s) }
