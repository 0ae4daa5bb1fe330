package lex

import (
	"errors"
)

type RuleFlags uint32

const (
	// Keyword rules refuse to match when an identifier character follows,
	// so "intx" is an identifier and not "int" followed by "x".
	Keyword RuleFlags = 1 << iota
	CaseInsensitive
)

// Rule is one lexical pattern. A rule either matches a literal string or
// defers to a recognizer function.
type Rule struct {
	Kind  TokenKind
	Lit   string
	Flags RuleFlags
	Match func(c Cursor) (Token, bool)
}

func Literal(kind TokenKind, lit string, flags ...RuleFlags) Rule {
	r := Rule{Kind: kind, Lit: lit}
	for _, f := range flags {
		r.Flags |= f
	}
	return r
}

func Dynamic(match func(c Cursor) (Token, bool)) Rule {
	return Rule{Match: match}
}

func (r Rule) IsDynamic() bool {
	return r.Match != nil
}

func (r Rule) matchAt(c Cursor) (Token, bool) {
	if r.IsDynamic() {
		return r.Match(c)
	}
	start := c.Pos()
	if !c.MatchString(r.Lit, r.Flags&CaseInsensitive == 0) {
		return Token{}, false
	}
	if r.Flags&Keyword != 0 {
		if b, ok := c.Peek(); ok && isValidIdentTail(b) {
			return Token{}, false
		}
	}
	return Token{Kind: r.Kind, Val: c.Src()[start:c.Pos()], Pos: start}, true
}

// Tokenizer holds an ordered rule list. Rule order is the tie break, a rule
// whose literal is a prefix of another must come after it.
type Tokenizer struct {
	rules []Rule
}

func NewTokenizer(rules ...Rule) *Tokenizer {
	t := &Tokenizer{}
	t.rules = append(t.rules, rules...)
	return t
}

// ParseOne returns the token produced by the first matching rule at c.
func (t *Tokenizer) ParseOne(c Cursor) (Token, bool) {
	if c.AtEOF() {
		return Token{}, false
	}
	for _, r := range t.rules {
		if tok, ok := r.matchAt(c); ok {
			return tok, true
		}
	}
	return Token{}, false
}

func (t *Tokenizer) ParseAll(src string) ([]Token, error) {
	var toks []Token
	c := NewCursor(src)
	for {
		c.SkipWhitespace()
		if c.AtEOF() {
			return toks, nil
		}
		tok, ok := t.ParseOne(c)
		if !ok || tok.Val == "" {
			return nil, ErrWithLoc(errors.New("unknown token"), c.Pos(), preview(src[c.Pos():]))
		}
		c.SeekTo(tok.End())
		toks = append(toks, tok)
	}
}

func readIdent(c Cursor) (Token, bool) {
	start := c.Pos()
	b, ok := c.Peek()
	if !ok || !isValidIdentStart(b) {
		return Token{}, false
	}
	for ok && isValidIdentTail(b) {
		c.Advance()
		b, ok = c.Peek()
	}
	return Token{Kind: IDENT, Val: c.Src()[start:c.Pos()], Pos: start}, true
}

func readConstantInt(c Cursor) (Token, bool) {
	start := c.Pos()
	for {
		b, ok := c.Peek()
		if !ok || !isNumeric(b) {
			break
		}
		c.Advance()
	}
	if c.Pos() == start {
		return Token{}, false
	}
	if b, ok := c.Peek(); ok && isValidIdentStart(b) {
		return Token{}, false
	}
	return Token{Kind: INT_CONSTANT, Val: c.Src()[start:c.Pos()], Pos: start}, true
}

// C is the rule table for C declarations. It is built once and never
// modified, so it is safe to share.
var C = NewTokenizer(
	Literal(CDECL, "__cdecl", Keyword),
	Literal(STDCALL, "__stdcall", Keyword),
	Literal(FASTCALL, "__fastcall", Keyword),
	Literal(THISCALL, "__thiscall", Keyword),
	Literal(VECTORCALL, "__vectorcall", Keyword),
	Literal(CONST, "const", Keyword),
	Literal(VOLATILE, "volatile", Keyword),
	Literal(CHAR, "char", Keyword),
	Literal(ENUM, "enum", Keyword),
	Literal(EXTERN, "extern", Keyword),
	Literal(STATIC, "static", Keyword),
	Literal(FLOAT, "float", Keyword),
	Literal(DOUBLE, "double", Keyword),
	Literal(INT8_T, "int8_t", Keyword),
	Literal(INT16_T, "int16_t", Keyword),
	Literal(INT32_T, "int32_t", Keyword),
	Literal(INT64_T, "int64_t", Keyword),
	Literal(UINT8_T, "uint8_t", Keyword),
	Literal(UINT16_T, "uint16_t", Keyword),
	Literal(UINT32_T, "uint32_t", Keyword),
	Literal(UINT64_T, "uint64_t", Keyword),
	Literal(INT, "int", Keyword),
	Literal(LONG, "long", Keyword),
	Literal(SHORT, "short", Keyword),
	Literal(UNSIGNED, "unsigned", Keyword),
	Literal(SIGNED, "signed", Keyword),
	Literal(STRUCT, "struct", Keyword),
	Literal(UNION, "union", Keyword),
	Literal(VOID, "void", Keyword),
	Literal(LBRACE, "{"),
	Literal(RBRACE, "}"),
	Literal(LBRACK, "["),
	Literal(RBRACK, "]"),
	Literal(LPAREN, "("),
	Literal(RPAREN, ")"),
	Literal(COMMA, ","),
	Literal(MUL, "*"),
	Literal(PERIOD, "."),
	Literal(SEMICOLON, ";"),
	Dynamic(readIdent),
	Dynamic(readConstantInt),
)

// Tokenize splits src into tokens using the C rule table.
func Tokenize(src string) ([]Token, error) {
	return C.ParseAll(src)
}
