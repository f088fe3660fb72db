package climatch

import (
	"fmt"
)

// Node is an immutable tree of styled text. A node is either a text leaf or
// a named node carrying style keys and an ordered list of children. Trees
// are built fresh for each help rendering and discarded afterward; they hold
// no resources.
type Node struct {
	text     string
	styles   []string
	width    int // indent width; 0 means the renderer's configured default
	children []*Node
}

// Text returns a text leaf.
func Text(s string) *Node {
	return &Node{text: s}
}

// Style builds a node with a single style key; see Styled.
func Style(key string, children ...any) *Node {
	return Styled([]string{key}, children...)
}

// Styled builds a node with the given style keys. Children may be string or
// *Node values; consecutive strings are merged into a single text leaf
// eagerly, so the rendered tree alternates between text leaves and styled
// subtrees and the renderer never needs to re-merge text. Unknown style keys
// and unsupported child types are programmer errors and panic.
func Styled(styles []string, children ...any) *Node {
	var pending string
	var havePending bool

	for _, key := range styles {
		if !validStyleKey(key) {
			panic(fmt.Sprintf("climatch: unknown style key %q", key))
		}
	}

	n := &Node{styles: styles}
	flush := func() {
		if havePending {
			n.children = append(n.children, Text(pending))
			pending = ""
			havePending = false
		}
	}
	for _, child := range children {
		switch c := child.(type) {
		case string:
			pending += c
			havePending = true
		case *Node:
			flush()
			n.children = append(n.children, c)
		default:
			panic(fmt.Sprintf("climatch: unsupported node child type %T", child))
		}
	}
	flush()
	return n
}

// Break is a structural node rendered as a single newline; it never touches
// the style stack.
func Break() *Node {
	return &Node{styles: []string{StyleBreak}}
}

// Indent is a structural node rendered as a run of spaces. A non-positive
// width defers to the renderer's configured default (one space).
func Indent(width int) *Node {
	if width < 0 {
		width = 0
	}
	return &Node{styles: []string{StyleIndent}, width: width}
}

func (n *Node) isText() bool {
	return len(n.styles) == 0 && n.children == nil
}

func (n *Node) isStructural() bool {
	if len(n.styles) != 1 {
		return false
	}
	return n.styles[0] == StyleBreak || n.styles[0] == StyleIndent
}
