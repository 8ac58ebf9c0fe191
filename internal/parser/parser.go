// Package parser implements the strict recursive-descent parser over
// the five-level grammar:
//
//	Disj    := Concat ('|' Concat)*
//	Concat  := Quality+
//	Quality := Unity ('*' | '+')?
//	Unity   := Char | Group
//	Group   := '(' Disj ')'
//	Char    := [A-Za-z0-9]
//
// Every production is modeled as a three-case result: matched (a
// node), no match (a legitimate signal for the caller to try an
// alternative), or a hard error (an unrecoverable structural problem).
// On "no match" the cursor is always left exactly where it started.
package parser

import (
	"github.com/ntabris/py-regex-parser/internal/ast"
	"github.com/ntabris/py-regex-parser/internal/cursor"
)

// Parse translates source into a Disj AST. Any unconsumed input after a
// successful top-level parse is reported as ErrTrailingInput.
func Parse(source string) (*ast.Node, error) {
	c := cursor.New(source)

	node, ok, err := parseDisj(c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newError(c.Pos(), ErrEmptyInput)
	}
	if !c.IsEOF() {
		return nil, newError(c.Pos(), ErrTrailingInput)
	}
	return node, nil
}

// isAlnum reports whether b is one of [A-Za-z0-9], the only characters
// in the regex alphabet.
func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// parseChar consumes one character; if alphanumeric it succeeds with
// that character, otherwise it rewinds and reports no match. Never
// errors; never consumes on failure.
func parseChar(c *cursor.Cursor) (*ast.Node, bool, error) {
	ch := c.Pop()
	if ch == cursor.EOF {
		return nil, false, nil
	}
	if !isAlnum(ch) {
		c.PushBack()
		return nil, false, nil
	}
	return ast.NewChar(ch), true, nil
}

// parseGroup: if the next character is '(', consume it, parse a Disj,
// then require ')'. If the next character is not '(', report no match
// without consuming.
//
// A Disj that matches nothing (an empty body) does not immediately
// decide the error: "()" and "(" must diverge (see DESIGN.md for why
// an empty group body shares EmptyInput's code), so a missing Disj
// still checks for the closing ')' before choosing between
// ErrEmptyInput (body empty, ')' present) and ErrUnclosedGroup (no ')'
// follows, whether at EOF or on a different character).
func parseGroup(c *cursor.Cursor) (*ast.Node, bool, error) {
	if c.Peek() != '(' {
		return nil, false, nil
	}
	c.Pop()

	inner, ok, err := parseDisj(c)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		if c.PopIf(')') {
			return nil, false, newError(c.Pos(), ErrEmptyInput)
		}
		return nil, false, newError(c.Pos(), ErrUnclosedGroup)
	}

	if !c.PopIf(')') {
		return nil, false, newError(c.Pos(), ErrUnclosedGroup)
	}

	return ast.NewGroup(inner), true, nil
}

// parseUnity delegates to Group when the next character is '(',
// otherwise tries Char, propagating its no-match.
func parseUnity(c *cursor.Cursor) (*ast.Node, bool, error) {
	if c.Peek() == '(' {
		group, ok, err := parseGroup(c)
		if err != nil || !ok {
			return nil, ok, err
		}
		return ast.NewUnity(group), true, nil
	}

	ch, ok, err := parseChar(c)
	if err != nil || !ok {
		return nil, ok, err
	}
	return ast.NewUnity(ch), true, nil
}

// parseQuality parses a Unity; if none is found it reports no match.
// Otherwise it consumes a trailing '*' or '+' as the quantifier, or
// records "none" if absent. The '?' quantifier is not recognized here.
func parseQuality(c *cursor.Cursor) (*ast.Node, bool, error) {
	unity, ok, err := parseUnity(c)
	if err != nil || !ok {
		return nil, ok, err
	}

	var quantifier byte
	if p := c.Peek(); p == '*' || p == '+' {
		quantifier = c.Pop()
	}

	return ast.NewQuality(unity, quantifier), true, nil
}

// parseConcat greedily parses Quality nodes until one fails. At least
// one must be produced, or it reports no match.
func parseConcat(c *cursor.Cursor) (*ast.Node, bool, error) {
	var items []*ast.Node
	for {
		item, ok, err := parseQuality(c)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, false, nil
	}
	return ast.NewConcat(items), true, nil
}

// parseDisj parses a Concat, then while the next character is '|'
// consumes it and parses another Concat. Once a '|' is consumed the
// grammar commits to another Concat: failing to produce one is
// ErrEmptyAlternative, not a silent end of alternation (see
// DESIGN.md's resolution of the trailing-'|' open question).
func parseDisj(c *cursor.Cursor) (*ast.Node, bool, error) {
	first, ok, err := parseConcat(c)
	if err != nil || !ok {
		return nil, ok, err
	}

	items := []*ast.Node{first}
	for c.Peek() == '|' {
		c.Pop()
		next, ok, err := parseConcat(c)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, newError(c.Pos(), ErrEmptyAlternative)
		}
		items = append(items, next)
	}

	return ast.NewDisj(items), true, nil
}
