// Package graphviz renders an automaton (NFA or DFA) as a Graphviz DOT
// digraph and, where the dot binary is available, shells out to
// produce a PNG. Serialization is a pure string builder; rendering is
// the only part that touches the filesystem or an external process.
package graphviz

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/ntabris/py-regex-parser/internal/automaton"
)

// Automaton is the minimal accessor contract graphviz needs, satisfied
// by both *nfa.NFA and *dfa.DFA.
type Automaton interface {
	Start() automaton.State
	States() []automaton.State
	Transitions() []automaton.Transition
}

// Accepting is implemented by automatons that can name individual
// accept states (the DFA). An automaton with a single designated
// accept state (the NFA) is handled separately by ToDotNFA.
type Accepting interface {
	Automaton
	IsAccept(automaton.State) bool
}

func nodeName(s automaton.State) string {
	return fmt.Sprintf("s%d", s)
}

// ToDot renders a as a "digraph g { ... }" string, left-to-right, with
// the start state and every accept state drawn as a double circle and
// all other states as a single circle, per the start/accept node
// convention.
func ToDot(a Accepting) string {
	var lines []string
	lines = append(lines, "\trankdir = LR;")

	for _, s := range a.States() {
		if s == a.Start() || a.IsAccept(s) {
			lines = append(lines, fmt.Sprintf("\t%q [shape=doublecircle];", nodeName(s)))
		} else {
			lines = append(lines, fmt.Sprintf("\t%q [shape=circle];", nodeName(s)))
		}
	}

	for _, t := range sortedTransitions(a.Transitions()) {
		label := t.Label.String()
		lines = append(lines, fmt.Sprintf("\t%q -> %q [label=%q];", nodeName(t.Source), nodeName(t.Dest), label))
	}

	return "digraph g {\n" + strings.Join(lines, "\n") + "\n}\n"
}

// ToDotNFA renders an automaton whose accept state is named explicitly
// (rather than queried via IsAccept) as a DOT digraph, using the same
// start/accept double-circle convention as ToDot. The NFA type has
// exactly one accept state, so it is passed directly instead of
// satisfying Accepting.
func ToDotNFA(a Automaton, accept automaton.State) string {
	var lines []string
	lines = append(lines, "\trankdir = LR;")

	for _, s := range a.States() {
		if s == a.Start() || s == accept {
			lines = append(lines, fmt.Sprintf("\t%q [shape=doublecircle];", nodeName(s)))
		} else {
			lines = append(lines, fmt.Sprintf("\t%q [shape=circle];", nodeName(s)))
		}
	}

	for _, t := range sortedTransitions(a.Transitions()) {
		label := t.Label.String()
		lines = append(lines, fmt.Sprintf("\t%q -> %q [label=%q];", nodeName(t.Source), nodeName(t.Dest), label))
	}

	return "digraph g {\n" + strings.Join(lines, "\n") + "\n}\n"
}

// sortedTransitions orders transitions by source, label and dest for
// DOT output, instead of the automaton's own insertion order.
func sortedTransitions(ts []automaton.Transition) []automaton.Transition {
	out := make([]automaton.Transition, len(ts))
	copy(out, ts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Dest < out[j].Dest
	})
	return out
}

// RenderPNG shells out to the dot binary to rasterize dotSource into
// path as a PNG. It requires Graphviz to be installed on $PATH;
// callers that cannot guarantee that should fall back to writing the
// .dot source with WriteDot instead.
func RenderPNG(dotSource string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphviz: create %s: %w", path, err)
	}
	defer f.Close()

	cmd := exec.Command("dot", "-Tpng")
	cmd.Stdin = strings.NewReader(dotSource)
	cmd.Stdout = f
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("graphviz: running dot: %w", err)
	}
	return nil
}

// WriteDot writes dotSource to path verbatim, for callers that want
// the .dot file itself rather than a rendered image.
func WriteDot(dotSource string, path string) error {
	return os.WriteFile(path, []byte(dotSource), 0o644)
}
