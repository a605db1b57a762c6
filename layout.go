package pretty

import "iter"

// Op is the kind of a resolved layout [Instruction].
type Op uint8

const (
	// OpText emits Instruction.Text.
	OpText Op = iota
	// OpSpace emits the flat rendering of a line, held in
	// Instruction.Text (a single space for [Line]).
	OpSpace
	// OpNewline emits a newline followed by Instruction.Indent spaces.
	OpNewline
)

// String returns the name of the operation.
func (o Op) String() string {
	switch o {
	case OpText:
		return "text"
	case OpSpace:
		return "space"
	case OpNewline:
		return "newline"
	default:
		return "unknown"
	}
}

// Instruction is one step of a resolved layout.
type Instruction struct {
	Op     Op
	Text   string
	Indent int
}

type mode uint8

const (
	modeBroken mode = iota
	modeFlat
)

func (m mode) String() string {
	if m == modeFlat {
		return "flat"
	}
	return "broken"
}

// cmd is a pending work item: a document with the indentation and mode it
// is rendered in.
type cmd struct {
	indent int
	mode   mode
	doc    *Doc
}

// engine resolves a document into instructions with an explicit work list.
// The work list holds at most one entry per enclosing Concat right spine,
// Nest and Group, so its size follows the nesting of the document rather
// than its length.
type engine struct {
	cfg     Config
	col     int
	stack   []cmd
	scratch []cmd

	// steps counts the nodes visited by the layout and by every fits
	// check.
	steps int
}

func newEngine(cfg Config) *engine {
	col := cfg.Column
	if col < 0 {
		col = 0
	}
	return &engine{cfg: cfg, col: col}
}

// Layout resolves d against the given width and yields the resulting
// instructions in order. The layout is computed lazily as the sequence is
// consumed.
func Layout(d Doc, width int, opts ...Option) iter.Seq[Instruction] {
	return newConfig(width, opts).Layout(d)
}

// Layout resolves d against c. See [Layout].
func (c Config) Layout(d Doc) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		newEngine(c).run(d, yield)
	}
}

func (e *engine) run(d Doc, emit func(Instruction) bool) {
	e.stack = append(e.stack[:0], cmd{indent: 0, mode: modeBroken, doc: &d})
	for len(e.stack) > 0 {
		c := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.steps++

		switch c.doc.kind {
		case kindEmpty:
		case kindText:
			e.col += c.doc.width
			if !emit(Instruction{Op: OpText, Text: c.doc.text}) {
				return
			}
		case kindConcat:
			e.stack = append(e.stack,
				cmd{indent: c.indent, mode: c.mode, doc: c.doc.right},
				cmd{indent: c.indent, mode: c.mode, doc: c.doc.left},
			)
		case kindNest:
			e.stack = append(e.stack, cmd{indent: max(c.indent+c.doc.indent, 0), mode: c.mode, doc: c.doc.left})
		case kindLine:
			if c.mode == modeFlat && !c.doc.hard {
				if c.doc.text == "" {
					continue
				}
				e.col += c.doc.width
				if !emit(Instruction{Op: OpSpace, Text: c.doc.text}) {
					return
				}
				continue
			}
			e.col = c.indent
			if !emit(Instruction{Op: OpNewline, Indent: c.indent}) {
				return
			}
		case kindGroup:
			m := c.mode
			if m == modeBroken && c.doc.left.soft {
				m = e.choose(c.doc.left)
			}
			e.stack = append(e.stack, cmd{indent: c.indent, mode: m, doc: c.doc.left})
		}
	}
}

// choose decides the mode of a group reached in broken mode.
func (e *engine) choose(d *Doc) mode {
	rem := e.cfg.Width - e.col
	m := modeBroken
	if e.cfg.Width > 0 && !d.hard && e.fits(d, rem) {
		m = modeFlat
	}
	if e.cfg.Logger != nil {
		e.cfg.Logger.Debug("group resolved", "column", e.col, "remaining", rem, "width", d.width, "mode", m)
	}
	return m
}

// fits reports whether d rendered flat, followed by the pending work list,
// stays within rem cells up to the end of the current line. The flat width
// of d is known up front; only the pending work is walked, and the walk
// stops at the first broken line or as soon as the budget is exceeded.
// Pending work that cannot break before its end costs one step.
func (e *engine) fits(d *Doc, rem int) bool {
	rem -= d.width
	if rem < 0 {
		return false
	}
	for i := len(e.stack) - 1; i >= 0; i-- {
		e.scratch = append(e.scratch[:0], e.stack[i])
		for len(e.scratch) > 0 {
			c := e.scratch[len(e.scratch)-1]
			e.scratch = e.scratch[:len(e.scratch)-1]
			e.steps++

			if !c.doc.hard && (c.mode == modeFlat || !c.doc.soft) {
				rem -= c.doc.width
				if rem < 0 {
					return false
				}
				continue
			}
			switch c.doc.kind {
			case kindLine:
				// Broken or hard: the current line ends here.
				return true
			case kindConcat:
				e.scratch = append(e.scratch,
					cmd{indent: c.indent, mode: c.mode, doc: c.doc.right},
					cmd{indent: c.indent, mode: c.mode, doc: c.doc.left},
				)
			case kindNest, kindGroup:
				e.scratch = append(e.scratch, cmd{indent: c.indent, mode: c.mode, doc: c.doc.left})
			}
		}
	}
	return true
}
