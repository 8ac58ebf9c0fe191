package nfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntabris/py-regex-parser/internal/automaton"
	"github.com/ntabris/py-regex-parser/internal/parser"
)

func mustParse(t *testing.T, src string) *NFA {
	t.Helper()
	node, err := parser.Parse(src)
	require.NoError(t, err)
	return FromAST(node)
}

// epsilonClosure and move are deliberately re-derived here (rather than
// imported from the dfa package) to keep this test file exercising only
// nfa's own public surface; it is small enough not to be worth sharing.
func epsilonClosure(n *NFA, states []automaton.State) map[automaton.State]bool {
	closure := map[automaton.State]bool{}
	var stack []automaton.State
	for _, s := range states {
		if !closure[s] {
			closure[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.Transitions() {
			if t.Source == s && t.Label.IsEpsilon() && !closure[t.Dest] {
				closure[t.Dest] = true
				stack = append(stack, t.Dest)
			}
		}
	}
	return closure
}

func move(n *NFA, states map[automaton.State]bool, label automaton.Label) []automaton.State {
	var out []automaton.State
	for _, t := range n.Transitions() {
		if states[t.Source] && t.Label == label {
			out = append(out, t.Dest)
		}
	}
	return out
}

// accepts is a minimal test-only set-of-states simulator used purely to
// verify the testable "language equivalence" property; it is not part
// of the public API (matching is a non-goal of the shipped module).
func accepts(n *NFA, input string) bool {
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

func TestSingleCharShape(t *testing.T) {
	n := mustParse(t, "a")

	require.Len(t, n.States(), 2)
	require.Len(t, n.Transitions(), 1)
	require.Equal(t, automaton.Label('a'), n.Transitions()[0].Label)

	require.True(t, accepts(n, "a"))
	require.False(t, accepts(n, "aa"))
	require.False(t, accepts(n, ""))
	require.False(t, accepts(n, "b"))
}

func TestAlternationShape(t *testing.T) {
	n := mustParse(t, "a|b")

	require.Len(t, n.States(), 6)

	require.True(t, accepts(n, "a"))
	require.True(t, accepts(n, "b"))
	require.False(t, accepts(n, "ab"))
	require.False(t, accepts(n, "ba"))
	require.False(t, accepts(n, ""))
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		regex  string
		accept []string
		reject []string
	}{
		{
			regex:  "ab*cd*",
			accept: []string{"ac", "abc", "abbc", "acd", "abcdd"},
			reject: []string{"", "a", "abd", "abcb"},
		},
		{
			regex:  "a(bc|d)*",
			accept: []string{"a", "abc", "ad", "adbc", "abcbcd", "abcdbc"},
			reject: []string{"b", "abd", "ac"},
		},
		{
			regex:  "z+(a|b)",
			accept: []string{"za", "zzb", "zzzza"},
			reject: []string{"", "z", "a", "zab"},
		},
		{
			regex:  "a|(bc)+d",
			accept: []string{"a", "bcd", "bcbcd"},
			reject: []string{"", "b", "bc", "ad"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.regex, func(t *testing.T) {
			n := mustParse(t, tc.regex)
			for _, s := range tc.accept {
				require.Truef(t, accepts(n, s), "expected %q to accept %q", tc.regex, s)
			}
			for _, s := range tc.reject {
				require.Falsef(t, accepts(n, s), "expected %q to reject %q", tc.regex, s)
			}
		})
	}
}

func TestFragmentShapeInvariant(t *testing.T) {
	// Every translated fragment's start and accept lie within its state
	// range, and the accept state has no outgoing non-epsilon
	// transitions that escape the fragment.
	for _, src := range []string{"a", "a|b", "ab", "a*", "a+", "(a|b)*", "a+b*c"} {
		n := mustParse(t, src)
		min, max := automaton.Bounds(n.Transitions(), n.Start(), n.Accept())
		require.GreaterOrEqual(t, n.Start(), min)
		require.LessOrEqual(t, n.Start(), max)
		require.GreaterOrEqual(t, n.Accept(), min)
		require.LessOrEqual(t, n.Accept(), max)
		for _, tr := range n.Transitions() {
			require.Falsef(t, tr.Source == n.Accept() && !tr.Label.IsEpsilon(), "%s: accept state has outgoing %q transition", src, tr.Label)
		}
	}
}
