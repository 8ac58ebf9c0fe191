// Package dfa converts an NFA into an equivalent deterministic finite
// automaton via subset construction: each DFA state is a set of NFA
// states reachable under epsilon-closure, discovered depth-first (a LIFO
// worklist) from the NFA's start closure.
package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ntabris/py-regex-parser/internal/automaton"
	"github.com/ntabris/py-regex-parser/internal/nfa"
)

// DFA is a completed deterministic finite automaton. States are dense
// integers starting at 0 (the start state); transitions carry at most
// one entry per (source, label) pair.
type DFA struct {
	transitions []automaton.Transition
	numStates   int
	accepts     map[automaton.State]bool
}

// FromNFA runs subset construction over n and returns the resulting
// DFA. The start state is always index 0.
func FromNFA(n *nfa.NFA) *DFA {
	b := &builder{
		nfa:     n,
		indexOf: map[string]automaton.State{},
	}

	startSet := b.epsilonClosure([]automaton.State{n.Start()})
	startIdx := b.registerSubset(startSet)

	worklist := []automaton.State{startIdx}
	for len(worklist) > 0 {
		top := len(worklist) - 1
		idx := worklist[top]
		worklist = worklist[:top]

		subset := b.subsets[idx]
		for _, label := range automaton.SortedLabels(n.Transitions(), subset) {
			moved := b.move(subset, label)
			closure := b.epsilonClosure(moved)

			// Open question (b): a label reachable from the subset but
			// whose epsilon-closure is empty produces no DFA state and
			// no transition, rather than a dead/trap state.
			if len(closure) == 0 {
				continue
			}

			targetIdx, isNew := b.registerSubsetIfAbsent(closure)
			b.transitions = append(b.transitions, automaton.Transition{
				Source: idx, Label: label, Dest: targetIdx,
			})
			if isNew {
				worklist = append(worklist, targetIdx)
			}
		}
	}

	accepts := map[automaton.State]bool{}
	for i, subset := range b.subsets {
		if subset[n.Accept()] {
			accepts[automaton.State(i)] = true
		}
	}

	return &DFA{
		transitions: b.transitions,
		numStates:   len(b.subsets),
		accepts:     accepts,
	}
}

// builder holds the subset registry and worklist state for one
// FromNFA run.
type builder struct {
	nfa         *nfa.NFA
	subsets     []map[automaton.State]bool
	indexOf     map[string]automaton.State
	transitions []automaton.Transition
}

// subsetKey renders a set of NFA states as a canonical string so equal
// subsets compare equal regardless of discovery order.
func subsetKey(subset map[automaton.State]bool) string {
	states := make([]int, 0, len(subset))
	for s := range subset {
		states = append(states, int(s))
	}
	sort.Ints(states)

	var sb strings.Builder
	for i, s := range states {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(s))
	}
	return sb.String()
}

// registerSubset assigns a new DFA state index to subset, which must
// not already be registered.
func (b *builder) registerSubset(subset map[automaton.State]bool) automaton.State {
	idx := automaton.State(len(b.subsets))
	b.subsets = append(b.subsets, subset)
	b.indexOf[subsetKey(subset)] = idx
	return idx
}

// registerSubsetIfAbsent returns subset's existing index, or registers
// it as a new one and reports that it is new.
func (b *builder) registerSubsetIfAbsent(subset map[automaton.State]bool) (automaton.State, bool) {
	key := subsetKey(subset)
	if idx, ok := b.indexOf[key]; ok {
		return idx, false
	}
	return b.registerSubset(subset), true
}

// epsilonClosure returns the set of NFA states reachable from states
// via zero or more epsilon transitions, states themselves included.
func (b *builder) epsilonClosure(states []automaton.State) map[automaton.State]bool {
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

		for _, t := range b.nfa.Transitions() {
			if t.Source == s && t.Label.IsEpsilon() && !closure[t.Dest] {
				closure[t.Dest] = true
				stack = append(stack, t.Dest)
			}
		}
	}
	return closure
}

// move returns the NFA states directly reachable from subset on label,
// with no epsilon-closure applied.
func (b *builder) move(subset map[automaton.State]bool, label automaton.Label) []automaton.State {
	var out []automaton.State
	for _, t := range b.nfa.Transitions() {
		if subset[t.Source] && t.Label == label {
			out = append(out, t.Dest)
		}
	}
	return out
}

// Start returns the DFA's start state, always index 0.
func (d *DFA) Start() automaton.State { return 0 }

// States returns every DFA state id in ascending order.
func (d *DFA) States() []automaton.State {
	states := make([]automaton.State, d.numStates)
	for i := range states {
		states[i] = automaton.State(i)
	}
	return states
}

// Transitions returns the DFA's transitions in discovery order. Unlike
// an NFA's transitions, at most one entry exists per (Source, Label)
// pair.
func (d *DFA) Transitions() []automaton.Transition {
	return d.transitions
}

// IsAccept reports whether s is an accepting state, i.e. its subset
// contains the source NFA's accept state.
func (d *DFA) IsAccept(s automaton.State) bool {
	return d.accepts[s]
}

// Accepts returns every accepting state id, in ascending order.
func (d *DFA) Accepts() []automaton.State {
	out := make([]automaton.State, 0, len(d.accepts))
	for s := range d.accepts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
