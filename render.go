package pretty

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnsupportedNode = errors.New("unsupported node")
	ErrNilWriter       = errors.New("nil writer")
)

const spaces = "                                                                "

// Write renders d at the given width and writes the result to w.
//
// Errors returned by w are returned unchanged.
func Write(w io.Writer, d Doc, width int, opts ...Option) error {
	return newConfig(width, opts).Write(w, d)
}

// Marshal renders d at the given width and returns the bytes.
func Marshal(d Doc, width int, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d, width, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render renders d at the given width. Options are not validated; a
// negative column counts as zero.
func Render(d Doc, width int, opts ...Option) string {
	return newConfig(width, opts).Render(d)
}

// Write renders d with c and writes the result to w.
func (c Config) Write(w io.Writer, d Doc) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := c.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := c.render(bw, d); err != nil {
		return err
	}
	return bw.Flush()
}

// Render renders d with c and returns the text.
func (c Config) Render(d Doc) string {
	var sb strings.Builder
	_ = c.render(&sb, d)
	return sb.String()
}

type stringWriter interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// render drives the layout and writes every instruction to w. With
// TrimTrailing, the indentation of a new line is held back until
// something is written on it.
func (c Config) render(w stringWriter, d Doc) error {
	var (
		err     error
		pending int
	)
	newEngine(c).run(d, func(in Instruction) bool {
		switch in.Op {
		case OpText, OpSpace:
			if pending > 0 {
				if err = writeSpaces(w, pending); err != nil {
					return false
				}
				pending = 0
			}
			_, err = w.WriteString(in.Text)
		case OpNewline:
			if err = w.WriteByte('\n'); err != nil {
				return false
			}
			if c.TrimTrailing {
				pending = in.Indent
			} else {
				err = writeSpaces(w, in.Indent)
			}
		}
		return err == nil
	})
	return err
}

func writeSpaces(w io.StringWriter, n int) error {
	for n > 0 {
		k := min(n, len(spaces))
		if _, err := w.WriteString(spaces[:k]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

// Pretty returns a [fmt.Stringer] that renders d at the given width.
func (d Doc) Pretty(width int) fmt.Stringer {
	return prettyDoc{doc: d, width: width}
}

type prettyDoc struct {
	doc   Doc
	width int
}

func (p prettyDoc) String() string { return Render(p.doc, p.width) }

// Format implements [fmt.Formatter]. The %v and %s verbs render the
// document at [DefaultWidth], or at the width given by the verb, as in
// "%40v".
func (d Doc) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		width, ok := f.Width()
		if !ok {
			width = DefaultWidth
		}
		_, _ = io.WriteString(f, Render(d, width))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(pretty.Doc)", verb)
	}
}
