package lex

import (
	"errors"
	"testing"
)

func TestCursorPeekAdvance(t *testing.T) {
	c := NewCursor("ab")
	if b, ok := c.Peek(); !ok || b != 'a' {
		t.Fatalf("peek: got %q %v", b, ok)
	}
	if c.Pos() != 0 {
		t.Fatal("peek moved the cursor")
	}
	c.Advance()
	if b, ok := c.Advance(); !ok || b != 'b' {
		t.Fatalf("advance: got %q %v", b, ok)
	}
	if _, ok := c.Advance(); ok {
		t.Fatal("advance past the end should fail")
	}
	if c.Pos() != 2 {
		t.Fatalf("expected pos 2, got %d", c.Pos())
	}
}

func TestCursorSeekTo(t *testing.T) {
	c := NewCursor("abc")
	if !c.SeekTo(3) {
		t.Fatal("seeking to the end should succeed")
	}
	if c.SeekTo(4) {
		t.Fatal("seeking past the end should fail")
	}
	if c.Pos() != 3 {
		t.Fatalf("failed seek moved the cursor to %d", c.Pos())
	}
}

func TestCursorCopyIsSnapshot(t *testing.T) {
	c := NewCursor("const")
	snap := c
	c.MatchString("con", true)
	if snap.Pos() != 0 {
		t.Fatal("copy was disturbed")
	}
	if c.Pos() != 3 {
		t.Fatalf("expected pos 3, got %d", c.Pos())
	}
}

func TestCursorMatch(t *testing.T) {
	c := NewCursor("Const x")
	if c.MatchString("const", true) {
		t.Fatal("case sensitive match should fail")
	}
	if c.Pos() != 0 {
		t.Fatal("failed match moved the cursor")
	}
	if !c.MatchString("const", false) {
		t.Fatal("case insensitive match should succeed")
	}
	if c.MatchString("xyzzy", true) {
		t.Fatal("match longer than the input should fail")
	}
	c.SkipWhitespace()
	if !c.MatchChar('X', false) {
		t.Fatal("case insensitive char match should succeed")
	}
	if c.MatchChar('x', true) {
		t.Fatal("char match at end should fail")
	}
}

func tokCursor(t *testing.T, src string) TokenCursor {
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	return NewTokenCursor(toks)
}

func TestTokenCursorMatch(t *testing.T) {
	c := tokCursor(t, "const int")
	if _, ok := c.Match(INT); ok {
		t.Fatal("matched the wrong kind")
	}
	if c.Pos() != 0 {
		t.Fatal("failed match moved the cursor")
	}
	tok, ok := c.MatchAny(VOLATILE, CONST)
	if !ok || tok.Kind != CONST {
		t.Fatalf("match any: got %v %v", tok, ok)
	}
	if _, ok := c.Match(INT); !ok {
		t.Fatal("expected int")
	}
	if !c.AtEOF() {
		t.Fatal("expected end of tokens")
	}
}

func TestTokenCursorMatchSequenceRestores(t *testing.T) {
	c := tokCursor(t, ". . int")
	if c.MatchSequence(PERIOD, PERIOD, PERIOD) {
		t.Fatal("sequence should not match")
	}
	if c.Pos() != 0 {
		t.Fatalf("failed sequence moved the cursor to %d", c.Pos())
	}
	c = tokCursor(t, "... int")
	if !c.MatchSequence(PERIOD, PERIOD, PERIOD) {
		t.Fatal("sequence should match")
	}
	if c.Pos() != 3 {
		t.Fatalf("expected pos 3, got %d", c.Pos())
	}
}

func TestTokenCursorErrorf(t *testing.T) {
	c := tokCursor(t, "int foo ( unsigned long long )")
	err := c.Errorf(2, "expected %s", "something")
	var loc ErrorLoc
	if !errors.As(err, &loc) {
		t.Fatalf("expected ErrorLoc, got %T", err)
	}
	if loc.Offset != 8 {
		t.Fatalf("expected offset 8, got %d", loc.Offset)
	}
	if loc.Preview != "( unsigned long lo..." {
		t.Fatalf("unexpected preview %q", loc.Preview)
	}
	want := "\"( unsigned long lo...\" (at char 8): expected something"
	if err.Error() != want {
		t.Fatalf("got %q expected %q", err.Error(), want)
	}
}

func TestTokenCursorErrorfPastEnd(t *testing.T) {
	c := tokCursor(t, "int *")
	err := c.Errorf(2, "expected an identifier")
	var loc ErrorLoc
	if !errors.As(err, &loc) {
		t.Fatalf("expected ErrorLoc, got %T", err)
	}
	if loc.Offset != 5 {
		t.Fatalf("expected offset 5, got %d", loc.Offset)
	}
	if loc.Preview != "" {
		t.Fatalf("expected empty preview, got %q", loc.Preview)
	}
}
