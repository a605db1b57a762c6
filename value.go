package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// valueIndent is the nesting applied to the elements of a broken
// collection built by FromNode.
const valueIndent = 2

// FromValue returns a document for any value that yaml.v3 can encode:
// structs, maps, slices and scalars. Mappings read {key: value, ...} and
// sequences [a, b, ...]; each collection stays on one line when it fits
// and puts one element per line otherwise. Map keys are sorted by the
// encoder, so the document is deterministic.
func FromValue(v any) (Doc, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return Doc{}, fmt.Errorf("encode %T: %w", v, err)
	}
	return FromNode(&n)
}

// FromNode returns a document for an already decoded YAML node. See
// [FromValue] for the layout. Aliases are rendered as the node they
// refer to; an alias inside its own anchor returns [ErrUnsupportedNode].
func FromNode(n *yaml.Node) (Doc, error) {
	return fromNode(n, make(map[*yaml.Node]bool))
}

// fromNode tracks the nodes on the current path in seen, so an alias
// pointing back at one of its ancestors is reported instead of followed.
func fromNode(n *yaml.Node, seen map[*yaml.Node]bool) (Doc, error) {
	if n == nil {
		return Empty(), nil
	}
	if seen[n] {
		return Doc{}, fmt.Errorf("%w: node at line %d contains itself", ErrUnsupportedNode, n.Line)
	}
	seen[n] = true
	defer delete(seen, n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Empty(), nil
		}
		return fromNode(n.Content[0], seen)
	case yaml.SequenceNode:
		items := make([]Doc, len(n.Content))
		for i, c := range n.Content {
			d, err := fromNode(c, seen)
			if err != nil {
				return Doc{}, err
			}
			items[i] = d
		}
		return EncloseSep(valueIndent, Text("["), Text("]"), Text(","), items...), nil
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return Doc{}, fmt.Errorf("%w: mapping at line %d has a key without a value", ErrUnsupportedNode, n.Line)
		}
		pairs := make([]Doc, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			k, err := fromNode(n.Content[i], seen)
			if err != nil {
				return Doc{}, err
			}
			v, err := fromNode(n.Content[i+1], seen)
			if err != nil {
				return Doc{}, err
			}
			pairs = append(pairs, Concat(k, Text(": "), v))
		}
		return EncloseSep(valueIndent, Text("{"), Text("}"), Text(","), pairs...), nil
	case yaml.ScalarNode:
		return scalar(n), nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return Doc{}, fmt.Errorf("%w: alias %q at line %d has no target", ErrUnsupportedNode, n.Value, n.Line)
		}
		if seen[n.Alias] {
			return Doc{}, fmt.Errorf("%w: alias %q at line %d refers to itself", ErrUnsupportedNode, n.Value, n.Line)
		}
		return fromNode(n.Alias, seen)
	default:
		return Doc{}, fmt.Errorf("%w: kind %d at line %d", ErrUnsupportedNode, n.Kind, n.Line)
	}
}

// scalar renders a scalar in its own quoting style. Block styles and
// values spanning several lines are double quoted so the text stays on
// one line.
func scalar(n *yaml.Node) Doc {
	switch {
	case n.Style&yaml.SingleQuotedStyle != 0:
		return Text("'" + strings.ReplaceAll(n.Value, "'", "''") + "'")
	case n.Style&(yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0,
		strings.ContainsAny(n.Value, "\r\n"):
		return Text(strconv.Quote(n.Value))
	default:
		return Text(n.Value)
	}
}
