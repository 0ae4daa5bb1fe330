package lex

import (
	"fmt"
	"modernc.org/mathutil"
	"strings"
)

// Number of characters of upcoming input quoted in diagnostics.
const previewLen = 15

func preview(s string) string {
	n := mathutil.Min(len(s), previewLen)
	if n < len(s) {
		return s[:n] + "..."
	}
	return s
}

// TokenCursor is a position within a fixed token sequence. Like Cursor it
// is a value, parsers take one by value and hand back the advanced copy,
// so a failed attempt never disturbs the caller.
type TokenCursor struct {
	toks []Token
	pos  int
}

func NewTokenCursor(toks []Token) TokenCursor {
	return TokenCursor{toks: toks}
}

func (c TokenCursor) Pos() int {
	return c.pos
}

func (c TokenCursor) Len() int {
	return len(c.toks)
}

func (c TokenCursor) AtEOF() bool {
	return c.pos >= len(c.toks)
}

func (c TokenCursor) Peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

// PeekKind is a shorthand for checking the current token kind.
func (c TokenCursor) PeekKind(k TokenKind) bool {
	t, ok := c.Peek()
	return ok && t.Kind == k
}

func (c *TokenCursor) Advance() (Token, bool) {
	t, ok := c.Peek()
	if ok {
		c.pos++
	}
	return t, ok
}

func (c *TokenCursor) SeekTo(pos int) bool {
	if pos < 0 || pos > len(c.toks) {
		return false
	}
	c.pos = pos
	return true
}

// Match consumes the current token if it has kind k.
func (c *TokenCursor) Match(k TokenKind) (Token, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != k {
		return Token{}, false
	}
	c.pos++
	return t, true
}

// MatchAny consumes the current token if it has any of the given kinds.
func (c *TokenCursor) MatchAny(kinds ...TokenKind) (Token, bool) {
	for _, k := range kinds {
		if t, ok := c.Match(k); ok {
			return t, true
		}
	}
	return Token{}, false
}

// MatchSequence consumes the given kinds in order, or nothing at all.
func (c *TokenCursor) MatchSequence(kinds ...TokenKind) bool {
	begin := c.pos
	for _, k := range kinds {
		if _, ok := c.Match(k); !ok {
			c.pos = begin
			return false
		}
	}
	return true
}

// Offset returns the source offset of the token at pos. Past the end it is
// the offset just after the last token.
func (c TokenCursor) Offset(pos int) int {
	if len(c.toks) == 0 {
		return 0
	}
	if pos >= 0 && pos < len(c.toks) {
		return c.toks[pos].Pos
	}
	return c.toks[len(c.toks)-1].End()
}

// Preview joins the text of the tokens starting at pos, cut to at most
// fifteen characters.
func (c TokenCursor) Preview(pos int) string {
	var sb strings.Builder
	count := previewLen
	for i := mathutil.Max(pos, 0); count > 0 && i < len(c.toks); i++ {
		val := c.toks[i].Val
		if len(val) < count {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(val)
			count -= len(val)
		} else {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(val[:count])
			if len(val) > count || i+1 < len(c.toks) {
				sb.WriteString("...")
			}
			count = 0
		}
	}
	return sb.String()
}

// Errorf builds a diagnostic located at the token at startPos.
func (c TokenCursor) Errorf(startPos int, format string, args ...interface{}) error {
	return ErrWithLoc(fmt.Errorf(format, args...), c.Offset(startPos), c.Preview(startPos))
}

// Wrap locates an existing error at the token at startPos.
func (c TokenCursor) Wrap(startPos int, err error) error {
	return ErrWithLoc(err, c.Offset(startPos), c.Preview(startPos))
}
