// Package runner simulates an NFA or DFA against an input string for
// the CLI driver. It exists purely as a demo collaborator: matching is
// not part of the parser/nfa/dfa library contract, so this logic lives
// here rather than as a method on nfa.NFA or dfa.DFA.
package runner

import (
	"github.com/ntabris/py-regex-parser/internal/automaton"
	"github.com/ntabris/py-regex-parser/internal/dfa"
	"github.com/ntabris/py-regex-parser/internal/nfa"
)

// RunNFA reports whether input is accepted by n, simulating all active
// NFA states in parallel (the standard subset-of-states walk, done
// here instead of through an intermediate DFA).
func RunNFA(n *nfa.NFA, input string) bool {
	current := epsilonClosure(n, []automaton.State{n.Start()})
	for i := 0; i < len(input); i++ {
		next := move(n, current, automaton.Label(input[i]))
		if len(next) == 0 {
			return false
		}
		current = epsilonClosure(n, next)
	}
	return current[n.Accept()]
}

// RunDFA reports whether input is accepted by d, a straight walk of
// one transition per input character.
func RunDFA(d *dfa.DFA, input string) bool {
	current := d.Start()
	for i := 0; i < len(input); i++ {
		label := automaton.Label(input[i])
		dest, ok := step(d, current, label)
		if !ok {
			return false
		}
		current = dest
	}
	return d.IsAccept(current)
}

func step(d *dfa.DFA, from automaton.State, label automaton.Label) (automaton.State, bool) {
	for _, t := range d.Transitions() {
		if t.Source == from && t.Label == label {
			return t.Dest, true
		}
	}
	return 0, false
}

func epsilonClosure(n *nfa.NFA, states []automaton.State) map[automaton.State]bool {
	closure := map[automaton.State]bool{}
	var stack []automaton.State
	for _, s := range states {
		if !closure[s] {
			closure[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		top := len(stack) - 1
		s := stack[top]
		stack = stack[:top]
		for _, t := range n.Transitions() {
			if t.Source == s && t.Label.IsEpsilon() && !closure[t.Dest] {
				closure[t.Dest] = true
				stack = append(stack, t.Dest)
			}
		}
	}
	return closure
}

func move(n *nfa.NFA, states map[automaton.State]bool, label automaton.Label) []automaton.State {
	var out []automaton.State
	for _, t := range n.Transitions() {
		if states[t.Source] && t.Label == label {
			out = append(out, t.Dest)
		}
	}
	return out
}
