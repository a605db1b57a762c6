package pretty

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func countNodes(d *Doc) int {
	switch d.kind {
	case kindConcat:
		return 1 + countNodes(d.left) + countNodes(d.right)
	case kindNest, kindGroup:
		return 1 + countNodes(d.left)
	default:
		return 1
	}
}

func nestedParens(depth int) Doc {
	d := Text("x")
	for range depth {
		d = Group(Concat(Text("("), Nest(1, Concat(Softline(), d)), Softline(), Text(")")))
	}
	return d
}

func manyWords(n int) Doc {
	words := make([]Doc, n)
	for i := range words {
		words[i] = Text(strings.Repeat("w", 1+i%7))
	}
	return Fill(words...)
}

func lineFreeGroups(n int) Doc {
	docs := make([]Doc, n)
	for i := range docs {
		docs[i] = Group(Text("x"))
	}
	return Concat(docs...)
}

func groupsBeforeLongText(n int) Doc {
	docs := make([]Doc, 0, n+1)
	for range n {
		docs = append(docs, Group(Concat(Text("x"), Softline())))
	}
	tail := make([]Doc, n)
	for i := range tail {
		tail[i] = Text("y")
	}
	return Concat(Group(Concat(docs...)), Concat(tail...))
}

func runSteps(d Doc, width int) (steps, maxStack int) {
	e := newEngine(Config{Width: width})
	e.run(d, func(Instruction) bool {
		maxStack = max(maxStack, len(e.stack))
		return true
	})
	return e.steps, maxStack
}

func TestLayoutStepsAreLinear(t *testing.T) {
	t.Parallel()
	tests := map[string]Doc{
		"nested groups":    nestedParens(2000),
		"filled words":     manyWords(10000),
		"sep of groups":    Sep(nestedParens(50), nestedParens(50), nestedParens(50)),
		"hard separated":   Intersperse(Hardline(), manyWords(100), manyWords(100)),
		"line-free groups": lineFreeGroups(4000),
		"long text tail":   groupsBeforeLongText(2000),
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			nodes := countNodes(&d)
			for _, width := range []int{0, 10, 80, 1 << 20} {
				steps, _ := runSteps(d, width)
				assert.LessOrEqual(t, steps, 4*nodes, "width %d", width)
			}
		})
	}
}

func TestLayoutStepsGrowWithSize(t *testing.T) {
	t.Parallel()
	small, _ := runSteps(nestedParens(1000), 40)
	large, _ := runSteps(nestedParens(2000), 40)
	assert.Less(t, large, 3*small)

	small, _ = runSteps(lineFreeGroups(1000), 1<<20)
	large, _ = runSteps(lineFreeGroups(4000), 1<<20)
	assert.Less(t, large, 5*small)
}

func TestLineFlags(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc        Doc
		soft, hard bool
	}{
		"text":     {doc: Text("a")},
		"line":     {doc: Line(), soft: true},
		"softline": {doc: Softline(), soft: true},
		"hardline": {doc: Hardline(), hard: true},
		"nested":   {doc: Nest(2, Group(Concat(Text("a"), Line()))), soft: true},
		"both":     {doc: Concat(Line(), Hardline()), soft: true, hard: true},
		"newlines": {doc: Text("a\nb"), hard: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.soft, tt.doc.soft)
			assert.Equal(t, tt.hard, tt.doc.hard)
		})
	}
}

func TestLayoutStackFollowsNesting(t *testing.T) {
	t.Parallel()
	_, depth := runSteps(VSep(make([]Doc, 0)...), 80)
	assert.Equal(t, 0, depth)

	words := make([]Doc, 10000)
	for i := range words {
		words[i] = Text("w")
	}
	_, depth = runSteps(VSep(words...), 80)
	assert.LessOrEqual(t, depth, 3)

	_, depth = runSteps(manyWords(10000), 80)
	assert.LessOrEqual(t, depth, 3)
}

func TestFitsStopsAtBrokenLine(t *testing.T) {
	t.Parallel()
	rest := Concat(Text("ab"), Line(), Text(strings.Repeat("z", 100)))
	e := newEngine(Config{Width: 10})
	e.stack = append(e.stack, cmd{mode: modeBroken, doc: &rest})
	g := Text("12345")
	assert.True(t, e.fits(&g, 10))
	assert.False(t, e.fits(&g, 6))

	flat := cmd{mode: modeFlat, doc: &rest}
	e.stack = append(e.stack[:0], flat)
	assert.False(t, e.fits(&g, 10))
}

func TestFitsHardLineEndsLine(t *testing.T) {
	t.Parallel()
	rest := Concat(Text("ab"), Hardline(), Text(strings.Repeat("z", 100)))
	e := newEngine(Config{Width: 10})
	e.stack = append(e.stack, cmd{mode: modeFlat, doc: &rest})
	g := Text("123")
	assert.True(t, e.fits(&g, 10))
}

func TestGroupCollapses(t *testing.T) {
	t.Parallel()
	g := Group(Concat(Text("a"), Line()))
	gg := Group(g)
	assert.Equal(t, kindGroup, gg.kind)
	assert.Equal(t, kindConcat, gg.left.kind)
}

func TestConcatIsRightNested(t *testing.T) {
	t.Parallel()
	d := Concat(Text("a"), Text("b"), Text("c"))
	require.Equal(t, kindConcat, d.kind)
	assert.Equal(t, kindText, d.left.kind)
	assert.Equal(t, kindConcat, d.right.kind)
	assert.Equal(t, 3, d.width)
}

func TestTextWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, textWidth("hello"))
	assert.Equal(t, 4, textWidth("你好"))
	assert.Equal(t, 0, textWidth(""))
	assert.Equal(t, 1, textWidth("±"))
	assert.Equal(t, 1, textWidth("α"))
}

func TestAddWidthSaturates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, addWidth(1, 2))
	assert.Equal(t, math.MaxInt, addWidth(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, addWidth(math.MaxInt-1, math.MaxInt-1))
}

func TestWriteSpaces(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	require.NoError(t, writeSpaces(&sb, 150))
	assert.Equal(t, strings.Repeat(" ", 150), sb.String())
}

func TestWriteSpacesError(t *testing.T) {
	t.Parallel()
	err := writeSpaces(errStringWriter{}, 3)
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "flat", modeFlat.String())
	assert.Equal(t, "broken", modeBroken.String())
}

type errStringWriter struct{}

func (errStringWriter) WriteString(string) (int, error) {
	return 0, errInternalWrite
}
