package nfa

import "github.com/ntabris/py-regex-parser/internal/automaton"

// Fragment is an NFA under construction: a set of transitions with
// exactly one start state and one accept state. Concat, Alternate, and
// Star are the entire composition algebra; every AST variant maps to a
// fragment built from these three primitives (see build in nfa.go).
//
// Composition consumes its operands: Concat and Alternate renumber and
// splice the fragments passed to them in place, so callers that need
// two independent copies of the same fragment (the '+' quantifier) must
// Clone first.
type Fragment struct {
	Transitions []automaton.Transition
	Start       automaton.State
	Accept      automaton.State
}

// FromChar produces the fragment for a single literal character: two
// states and one transition labeled c between them.
func FromChar(c byte) Fragment {
	return Fragment{
		Transitions: []automaton.Transition{
			{Source: 0, Label: automaton.Label(c), Dest: 1},
		},
		Start:  0,
		Accept: 1,
	}
}

// maxState returns the largest state number referenced by f.
func (f Fragment) maxState() automaton.State {
	_, max := automaton.Bounds(f.Transitions, f.Start, f.Accept)
	return max
}

// minState returns the smallest state number referenced by f.
func (f Fragment) minState() automaton.State {
	min, _ := automaton.Bounds(f.Transitions, f.Start, f.Accept)
	return min
}

// Clone returns a deep copy of f; no transition slice is shared with
// the original. Required before reusing a fragment a second time,
// since composition mutates its operands (see Plus below).
func (f Fragment) Clone() Fragment {
	return Fragment{
		Transitions: automaton.Clone(f.Transitions),
		Start:       f.Start,
		Accept:      f.Accept,
	}
}

// Concat composes left and right so that left's accept becomes right's
// start: the combined fragment starts at left.Start and accepts at
// right.Accept. Both operands are consumed (mutated) by this call.
func Concat(left, right Fragment) Fragment {
	k := left.maxState()
	if k != left.Accept {
		k++
	}

	automaton.AddOffset(right.Transitions, k)
	right.Start += k
	right.Accept += k
	automaton.ReplaceNode(right.Transitions, right.Start, k)

	automaton.ReplaceNode(left.Transitions, left.Accept, k)

	transitions := append(left.Transitions, right.Transitions...)

	return Fragment{
		Transitions: transitions,
		Start:       left.Start,
		Accept:      right.Accept,
	}
}

// Alternate composes left and right so either may be taken: a new
// start epsilon-branches to both operands' starts, and a new accept is
// joined by epsilon from both. Both operands are consumed by this
// call.
func Alternate(left, right Fragment) Fragment {
	// Prepend a new start to left.
	newStart := left.minState()
	automaton.AddOffset(left.Transitions, 1)
	left.Start++
	left.Accept++
	left.Transitions = append(left.Transitions, automaton.Transition{
		Source: newStart, Label: automaton.Epsilon, Dest: left.Start,
	})
	left.Start = newStart

	// Append a new accept to left.
	oldAccept := left.Accept
	newAccept := left.maxState() + 1
	left.Transitions = append(left.Transitions, automaton.Transition{
		Source: oldAccept, Label: automaton.Epsilon, Dest: newAccept,
	})
	left.Accept = newAccept

	// Offset right clear of left, then splice it in.
	offset := left.Accept + 1
	automaton.AddOffset(right.Transitions, offset)
	right.Start += offset
	right.Accept += offset

	left.Transitions = append(left.Transitions,
		automaton.Transition{Source: left.Start, Label: automaton.Epsilon, Dest: right.Start},
		automaton.Transition{Source: right.Accept, Label: automaton.Epsilon, Dest: left.Accept},
	)
	left.Transitions = append(left.Transitions, right.Transitions...)

	return left
}

// Star applies Kleene closure to f in place: a zero-repetition
// epsilon skip, a back-edge for further repetitions, and a fresh
// accept so the fragment's accept never has an incoming back-edge
// from its own start (which would confuse a later Concat).
func Star(f Fragment) Fragment {
	f.Transitions = append(f.Transitions,
		automaton.Transition{Source: f.Start, Label: automaton.Epsilon, Dest: f.Accept},
		automaton.Transition{Source: f.Accept, Label: automaton.Epsilon, Dest: f.Start},
	)

	oldAccept := f.Accept
	newAccept := f.maxState() + 1
	f.Transitions = append(f.Transitions, automaton.Transition{
		Source: oldAccept, Label: automaton.Epsilon, Dest: newAccept,
	})
	f.Accept = newAccept

	return f
}

// Plus is child concatenated with a fresh copy of child*. The copy is
// a deep clone: state-number offsetting during Concat mutates its
// operands, so reusing f directly for both halves would corrupt the
// first copy's numbering.
func Plus(f Fragment) Fragment {
	tail := Star(f.Clone())
	return Concat(f, tail)
}
