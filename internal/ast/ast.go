// Package ast defines the abstract syntax tree produced by the parser:
// a single tagged sum over the six grammar variants (Char, Group,
// Unity, Quality, Concat, Disj), rather than one type per grammar rule.
// Nodes are built once by the parser and are read-only afterward; NFA
// synthesis never mutates a Node.
package ast

// Kind tags which grammar variant a Node represents.
type Kind int

const (
	// Char is a single literal alphanumeric character.
	Char Kind = iota
	// Group is a parenthesized subexpression; Child holds the inner Disj.
	Group
	// Unity is a transparent wrapper around a Char or a Group; Child
	// holds the wrapped node.
	Unity
	// Quality is an optionally-repeated Unity; Child holds the unity,
	// Quantifier is one of 0 (none), '*', or '+'.
	Quality
	// Concat is a juxtaposition of one or more Quality nodes, in Items.
	Concat
	// Disj is an alternation of one or more Concat nodes, in Items.
	Disj
)

// Node is the tagged AST node. Which fields are meaningful depends on
// Kind:
//
//	Char:    Value
//	Group:   Child (a Disj node)
//	Unity:   Child (a Char or Group node)
//	Quality: Child (a Unity node), Quantifier
//	Concat:  Items (Quality nodes)
//	Disj:    Items (Concat nodes)
type Node struct {
	Kind       Kind
	Value      byte
	Quantifier byte // 0, '*', or '+'; only meaningful for Quality
	Child      *Node
	Items      []*Node
}

// NewChar returns a Char node for the literal character c.
func NewChar(c byte) *Node {
	return &Node{Kind: Char, Value: c}
}

// NewGroup returns a Group node wrapping the parenthesized disjunction.
func NewGroup(inner *Node) *Node {
	return &Node{Kind: Group, Child: inner}
}

// NewUnity returns a Unity node wrapping a Char or Group.
func NewUnity(child *Node) *Node {
	return &Node{Kind: Unity, Child: child}
}

// NewQuality returns a Quality node; quantifier is 0, '*', or '+'.
func NewQuality(child *Node, quantifier byte) *Node {
	return &Node{Kind: Quality, Child: child, Quantifier: quantifier}
}

// NewConcat returns a Concat node over a nonempty sequence of Quality
// nodes.
func NewConcat(items []*Node) *Node {
	return &Node{Kind: Concat, Items: items}
}

// NewDisj returns a Disj node over a nonempty sequence of Concat nodes.
func NewDisj(items []*Node) *Node {
	return &Node{Kind: Disj, Items: items}
}

// Leaves returns, in order, the literal character of every Char leaf
// reachable from n. It is the round-trip check from the testable
// properties: for any accepted input, Leaves reproduces the
// alphanumeric characters of the source in order.
func Leaves(n *Node) []byte {
	var out []byte
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case Char:
			out = append(out, n.Value)
		case Group, Unity, Quality:
			walk(n.Child)
		case Concat, Disj:
			for _, item := range n.Items {
				walk(item)
			}
		}
	}
	walk(n)
	return out
}
