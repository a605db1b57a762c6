package pretty

// Intersperse returns docs with sep between each pair.
func Intersperse(sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty()
	}
	all := make([]Doc, 0, 2*len(docs)-1)
	for i, d := range docs {
		if i > 0 {
			all = append(all, sep)
		}
		all = append(all, d)
	}
	return Concat(all...)
}

// Punctuate appends p to every document but the last, so that
// Punctuate(Text(","), a, b, c) yields a, then b each followed by a comma,
// then c.
func Punctuate(p Doc, docs ...Doc) []Doc {
	out := make([]Doc, len(docs))
	for i, d := range docs {
		if i < len(docs)-1 {
			d = concat(d, p)
		}
		out[i] = d
	}
	return out
}

// HSep joins docs with spaces. The result never breaks between them.
func HSep(docs ...Doc) Doc { return Intersperse(Space(), docs...) }

// VSep joins docs with [Line]: one per line, unless an enclosing group
// renders flat.
func VSep(docs ...Doc) Doc { return Intersperse(Line(), docs...) }

// Sep joins docs with spaces if they all fit on the line, and puts each on
// its own line otherwise.
func Sep(docs ...Doc) Doc { return Group(VSep(docs...)) }

// Fill joins docs with spaces, breaking a line only where the next
// document would not fit. Each separator is decided on its own.
func Fill(docs ...Doc) Doc { return Intersperse(Group(Line()), docs...) }

// FillSep is an alias of [Fill].
func FillSep(docs ...Doc) Doc { return Fill(docs...) }

// HCat concatenates docs with nothing in between.
func HCat(docs ...Doc) Doc { return Concat(docs...) }

// VCat joins docs with [Softline]: one per line, or run together when an
// enclosing group renders flat.
func VCat(docs ...Doc) Doc { return Intersperse(Softline(), docs...) }

// Cat runs docs together if they fit on the line, and puts each on its own
// line otherwise.
func Cat(docs ...Doc) Doc { return Group(VCat(docs...)) }

// FillCat runs docs together, breaking a line only where the next document
// would not fit.
func FillCat(docs ...Doc) Doc { return Intersperse(Group(Softline()), docs...) }

// EncloseSep renders docs as a bracketed list separated by sep. Flat, the
// list reads "[a, b]" (with Text("[") and Text("]") around and Text(",")
// as sep); broken, each element goes on its own line indented by indent,
// and right returns to the enclosing indentation:
//
//	[
//	  a,
//	  b
//	]
func EncloseSep(indent int, left, right, sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Concat(left, right)
	}
	body := Intersperse(Concat(sep, Line()), docs...)
	return Group(Concat(left, Nest(indent, Concat(Softline(), body)), Softline(), right))
}
