// Package cursor provides a one-character-lookahead, rewindable stream
// over a regex source string, matching the RegexString input buffer the
// rest of this compiler was ported from.
package cursor

// EOF is the sentinel byte returned by Peek and Pop once the cursor has
// run off the end of the source. It is never a valid character in the
// regex alphabet, so callers can compare directly against it.
const EOF = 0

// Cursor is a rewindable index into an immutable source string. It
// carries no other state: positions are 0-based indices into the source.
type Cursor struct {
	src string
	pos int
}

// New returns a Cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src}
}

// IsEOF reports whether the cursor's position equals len(source).
func (c *Cursor) IsEOF() bool {
	return c.pos == len(c.src)
}

// Peek returns the next character without consuming it, or EOF if the
// cursor is already at the end of input.
func (c *Cursor) Peek() byte {
	if c.IsEOF() {
		return EOF
	}
	return c.src[c.pos]
}

// Pop advances the cursor by one and returns the consumed character, or
// EOF if the cursor was already at the end of input.
func (c *Cursor) Pop() byte {
	if c.IsEOF() {
		return EOF
	}
	ch := c.src[c.pos]
	c.pos++
	return ch
}

// PopIf consumes and returns true if the next character equals ch;
// otherwise it leaves the cursor untouched and returns false.
func (c *Cursor) PopIf(ch byte) bool {
	if c.Peek() == ch {
		c.Pop()
		return true
	}
	return false
}

// PushBack moves the position back by one. It is only valid to call
// immediately after a Pop, to undo a speculative consume; it does not
// range-check, matching the contract that callers never rewind past
// the start of input.
func (c *Cursor) PushBack() {
	c.pos--
}

// Pos returns the cursor's current 0-based index, useful for error
// reporting.
func (c *Cursor) Pos() int {
	return c.pos
}
