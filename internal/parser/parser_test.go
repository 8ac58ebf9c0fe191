package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntabris/py-regex-parser/internal/ast"
)

func TestParseRoundTripsLeaves(t *testing.T) {
	cases := []string{
		"a",
		"ab",
		"a|b",
		"ab*cd*",
		"a(bc|d)*",
		"z+(a|b)",
		"a|(bc)+d",
	}

	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			node, err := Parse(src)
			require.NoError(t, err)

			var want []byte
			for i := 0; i < len(src); i++ {
				ch := src[i]
				if isAlnum(ch) {
					want = append(want, ch)
				}
			}
			require.Equal(t, want, ast.Leaves(node))
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseUnclosedGroup(t *testing.T) {
	_, err := Parse("(")
	require.ErrorIs(t, err, ErrUnclosedGroup)
}

func TestParseTrailingInput(t *testing.T) {
	_, err := Parse("a)")
	require.ErrorIs(t, err, ErrTrailingInput)
}

func TestParseTrailingPipeIsEmptyAlternative(t *testing.T) {
	_, err := Parse("a|")
	require.ErrorIs(t, err, ErrEmptyAlternative)
}

func TestParseEmptyGroupBodyIsEmptyInput(t *testing.T) {
	_, err := Parse("()")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseEmptyGroupBodyWithoutClosingParenIsUnclosedGroup(t *testing.T) {
	// An empty body not immediately followed by ')' is an unclosed
	// group, not EmptyInput: the '*' here can't start a Unity, so the
	// inner Disj still matches nothing, but no ')' follows.
	_, err := Parse("(*")
	require.ErrorIs(t, err, ErrUnclosedGroup)
}

func TestParseDoubleStarIsAcceptedThenTrailing(t *testing.T) {
	// "a**" parses Quality(Char a, '*') then a second '*' cannot start
	// a Unity, so Concat stops after one Quality and the outer Disj
	// succeeds on "a*", leaving a stray '*' that trips TrailingInput.
	_, err := Parse("a**")
	require.ErrorIs(t, err, ErrTrailingInput)
}

func TestParseStructure(t *testing.T) {
	node, err := Parse("a")
	require.NoError(t, err)
	require.Equal(t, ast.Disj, node.Kind)
	require.Len(t, node.Items, 1)

	concat := node.Items[0]
	require.Equal(t, ast.Concat, concat.Kind)
	require.Len(t, concat.Items, 1)

	quality := concat.Items[0]
	require.Equal(t, ast.Quality, quality.Kind)
	require.Equal(t, byte(0), quality.Quantifier)

	unity := quality.Child
	require.Equal(t, ast.Unity, unity.Kind)
	require.Equal(t, ast.Char, unity.Child.Kind)
	require.Equal(t, byte('a'), unity.Child.Value)
}

func TestParseAlternationStructure(t *testing.T) {
	node, err := Parse("a|b")
	require.NoError(t, err)
	require.Equal(t, ast.Disj, node.Kind)
	require.Len(t, node.Items, 2)
}

func TestParseNonAlnumRejected(t *testing.T) {
	_, err := Parse("a.b")
	require.ErrorIs(t, err, ErrTrailingInput)
}
