package dfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntabris/py-regex-parser/internal/automaton"
	"github.com/ntabris/py-regex-parser/internal/nfa"
	"github.com/ntabris/py-regex-parser/internal/parser"
)

func mustDFA(t *testing.T, src string) *DFA {
	t.Helper()
	node, err := parser.Parse(src)
	require.NoError(t, err)
	return FromNFA(nfa.FromAST(node))
}

// accepts simulates d directly, one transition lookup per input
// character; used only to check the testable "language equivalence
// with the source NFA" property, not exposed as a public matcher.
func accepts(d *DFA, input string) bool {
	current := d.Start()
	for i := 0; i < len(input); i++ {
		label := automaton.Label(input[i])
		next, ok := automaton.State(-1), false
		for _, t := range d.Transitions() {
			if t.Source == current && t.Label == label {
				next, ok = t.Dest, true
				break
			}
		}
		if !ok {
			return false
		}
		current = next
	}
	return d.IsAccept(current)
}

func TestDeterminism(t *testing.T) {
	for _, src := range []string{"a", "a|b", "ab*cd*", "a(bc|d)*", "z+(a|b)", "a|(bc)+d"} {
		d := mustDFA(t, src)

		seen := map[[2]int64]bool{}
		for _, tr := range d.Transitions() {
			key := [2]int64{int64(tr.Source), int64(tr.Label)}
			require.Falsef(t, seen[key], "%s: duplicate transition for state %d label %q", src, tr.Source, tr.Label)
			seen[key] = true
		}
	}
}

func TestStartIsIndexZero(t *testing.T) {
	d := mustDFA(t, "a|b")
	require.Equal(t, automaton.State(0), d.Start())
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		regex  string
		accept []string
		reject []string
	}{
		{regex: "a", accept: []string{"a"}, reject: []string{"", "aa", "b"}},
		{regex: "a|b", accept: []string{"a", "b"}, reject: []string{"ab", "", "c"}},
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
			d := mustDFA(t, tc.regex)
			for _, s := range tc.accept {
				require.Truef(t, accepts(d, s), "expected %q to accept %q", tc.regex, s)
			}
			for _, s := range tc.reject {
				require.Falsef(t, accepts(d, s), "expected %q to reject %q", tc.regex, s)
			}
		})
	}
}

func TestNoTransitionOnEmptyClosure(t *testing.T) {
	// Regression guard for the empty-move open question: subset
	// construction must never register a state for an empty closure,
	// and States() must stay in lockstep with the transitions actually
	// produced.
	d := mustDFA(t, "a|b")
	require.NotZero(t, len(d.States()))
	// The start closure, {a}'s closure and {b}'s closure; no empty set.
	require.Len(t, d.States(), 3)

	maxSeen := automaton.State(0)
	for _, tr := range d.Transitions() {
		if tr.Source > maxSeen {
			maxSeen = tr.Source
		}
		if tr.Dest > maxSeen {
			maxSeen = tr.Dest
		}
	}
	require.Less(t, int(maxSeen), len(d.States()))
}

func TestAcceptsSubsetOfStates(t *testing.T) {
	d := mustDFA(t, "a(bc|d)*")
	states := map[automaton.State]bool{}
	for _, s := range d.States() {
		states[s] = true
	}
	for _, a := range d.Accepts() {
		require.True(t, states[a])
		require.True(t, d.IsAccept(a))
	}
}
