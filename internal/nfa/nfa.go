// Package nfa builds a nondeterministic finite automaton from a parsed
// AST via Thompson's construction (Fragment algebra in fragment.go),
// and exposes the resulting automaton for iteration and conversion to
// a DFA (see the sibling dfa package).
package nfa

import (
	"github.com/ntabris/py-regex-parser/internal/ast"
	"github.com/ntabris/py-regex-parser/internal/automaton"
)

// NFA is a completed nondeterministic finite automaton: a set of
// transitions, a single start state, and a single accept state.
type NFA struct {
	transitions []automaton.Transition
	start       automaton.State
	accept      automaton.State
}

// FromAST translates a parsed Disj root into an NFA via Thompson's
// construction. Translation is a plain recursive function dispatching
// on Node.Kind, matching spec.md §4.3.6:
//
//	Char              -> literal fragment
//	Group / Unity      -> transparent pass-through to the child
//	Quality (none)     -> pass-through to the child
//	Quality ('*')      -> Star(child)
//	Quality ('+')      -> Plus(child)
//	Concat             -> left-fold via Concat
//	Disj               -> left-fold via Alternate
func FromAST(root *ast.Node) *NFA {
	f := build(root)
	return &NFA{transitions: f.Transitions, start: f.Start, accept: f.Accept}
}

func build(n *ast.Node) Fragment {
	switch n.Kind {
	case ast.Char:
		return FromChar(n.Value)

	case ast.Group, ast.Unity:
		return build(n.Child)

	case ast.Quality:
		child := build(n.Child)
		switch n.Quantifier {
		case 0:
			return child
		case '*':
			return Star(child)
		case '+':
			return Plus(child)
		default:
			panic("nfa: unknown quantifier " + string(n.Quantifier))
		}

	case ast.Concat:
		acc := build(n.Items[0])
		for _, item := range n.Items[1:] {
			acc = Concat(acc, build(item))
		}
		return acc

	case ast.Disj:
		acc := build(n.Items[0])
		for _, item := range n.Items[1:] {
			acc = Alternate(acc, build(item))
		}
		return acc

	default:
		panic("nfa: unknown ast.Kind")
	}
}

// Start returns the NFA's single start state.
func (n *NFA) Start() automaton.State { return n.start }

// Accept returns the NFA's single accept state.
func (n *NFA) Accept() automaton.State { return n.accept }

// States returns every state id in [min, max], in ascending order,
// where min and max are the smallest and largest ids referenced by n's
// transitions (plus Start/Accept). The range is not always fully used:
// when Concat joins a left fragment whose accept is not its largest
// state, that accept is renumbered to a fresh id and its old id is left
// without transitions, yet it is still listed here.
func (n *NFA) States() []automaton.State {
	min, max := automaton.Bounds(n.transitions, n.start, n.accept)
	states := make([]automaton.State, 0, max-min+1)
	for s := min; s <= max; s++ {
		states = append(states, s)
	}
	return states
}

// Transitions returns the NFA's transitions in insertion order.
func (n *NFA) Transitions() []automaton.Transition {
	return n.transitions
}
