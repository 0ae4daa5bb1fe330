package lex

// Cursor is a position within an immutable source text.
// Cursors are values, a copy is an independent snapshot that can be
// advanced and thrown away without disturbing the original.
type Cursor struct {
	src string
	pos int
}

func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

func (c Cursor) Pos() int {
	return c.pos
}

func (c Cursor) Src() string {
	return c.src
}

func (c Cursor) AtEOF() bool {
	return c.pos >= len(c.src)
}

// Peek returns the current character, false at the end of input.
func (c Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

func (c *Cursor) Advance() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// SeekTo moves the cursor to an absolute position. Positions past the end
// of input are refused and leave the cursor unchanged.
func (c *Cursor) SeekTo(pos int) bool {
	if pos < 0 || pos > len(c.src) {
		return false
	}
	c.pos = pos
	return true
}

func (c *Cursor) MatchChar(expected byte, caseSensitive bool) bool {
	b, ok := c.Peek()
	if !ok {
		return false
	}
	if b != expected && (caseSensitive || toLower(b) != toLower(expected)) {
		return false
	}
	c.pos++
	return true
}

func (c *Cursor) MatchString(s string, caseSensitive bool) bool {
	if len(s) > len(c.src)-c.pos {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := c.src[c.pos+i], s[i]
		if a == b {
			continue
		}
		if caseSensitive || toLower(a) != toLower(b) {
			return false
		}
	}
	c.pos += len(s)
	return true
}

func (c *Cursor) SkipWhitespace() {
	for {
		b, ok := c.Peek()
		if !ok || !isWhiteSpace(b) {
			return
		}
		c.pos++
	}
}

func isWhiteSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNumeric(b byte) bool {
	return b >= '0' && b <= '9'
}

func isValidIdentStart(b byte) bool {
	return b == '_' || isAlpha(b)
}

func isValidIdentTail(b byte) bool {
	return isValidIdentStart(b) || isNumeric(b)
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
