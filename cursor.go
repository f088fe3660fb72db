package climatch

// Cursor is a linear, rewindable pointer over the raw argument tokens.
// Position starts one-before-start so the first Next() yields the first
// token. Matchers that need to backtrack across more than one token save
// Pos() on entry and restore it with SetPos() on failure; that save/restore
// pair is the only undo mechanism.
type Cursor struct {
	tokens []string
	pos    int
}

func NewCursor(tokens []string) *Cursor {
	return &Cursor{
		tokens: tokens,
		pos:    -1,
	}
}

// Next advances one position and returns the token now under the cursor.
// Advancing past the end clamps at the last index and reports absence; it
// never indexes out of bounds.
func (c *Cursor) Next() (token string, ok bool) {
	if c.pos+1 >= len(c.tokens) {
		c.pos = len(c.tokens) - 1
		goto end
	}
	c.pos++
	token = c.tokens[c.pos]
	ok = true
end:
	return token, ok
}

// Previous retreats one position, clamping at the logical start (the
// one-before-start position). It reports absence once the cursor is back
// before the first token.
func (c *Cursor) Previous() (token string, ok bool) {
	if c.pos-1 < 0 {
		c.pos = -1
		goto end
	}
	c.pos--
	token = c.tokens[c.pos]
	ok = true
end:
	return token, ok
}

// Pos returns the current position for later restore via SetPos.
func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos restores a position previously obtained from Pos, clamping to the
// valid range.
func (c *Cursor) SetPos(pos int) {
	switch {
	case pos < -1:
		pos = -1
	case pos >= len(c.tokens):
		pos = len(c.tokens) - 1
	}
	c.pos = pos
}

// Remaining returns how many tokens are left to consume.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos - 1
}
