package lex

import (
	"fmt"
)

// The list of tokens.
const (

	// Single char tokens are themselves.
	MUL       = '*'
	LPAREN    = '('
	LBRACK    = '['
	LBRACE    = '{'
	COMMA     = ','
	PERIOD    = '.'
	RPAREN    = ')'
	RBRACK    = ']'
	RBRACE    = '}'
	SEMICOLON = ';'

	ERROR = 10000 + iota
	// Identifiers and basic type literals
	// (these tokens stand for classes of literals)
	IDENT        // main
	INT_CONSTANT // 12345

	// Calling conventions
	CDECL
	STDCALL
	FASTCALL
	THISCALL
	VECTORCALL

	// Keywords
	CONST
	VOLATILE
	CHAR
	ENUM
	EXTERN
	STATIC
	FLOAT
	DOUBLE
	INT
	LONG
	SHORT
	UNSIGNED
	SIGNED
	STRUCT
	UNION
	VOID
	INT8_T
	INT16_T
	INT32_T
	INT64_T
	UINT8_T
	UINT16_T
	UINT32_T
	UINT64_T
)

var tokenKindToStr = [...]string{
	ERROR:        "error",
	IDENT:        "ident",
	INT_CONSTANT: "intconst",
	CDECL:        "__cdecl",
	STDCALL:      "__stdcall",
	FASTCALL:     "__fastcall",
	THISCALL:     "__thiscall",
	VECTORCALL:   "__vectorcall",
	CONST:        "const",
	VOLATILE:     "volatile",
	CHAR:         "char",
	ENUM:         "enum",
	EXTERN:       "extern",
	STATIC:       "static",
	FLOAT:        "float",
	DOUBLE:       "double",
	INT:          "int",
	LONG:         "long",
	SHORT:        "short",
	UNSIGNED:     "unsigned",
	SIGNED:       "signed",
	STRUCT:       "struct",
	UNION:        "union",
	VOID:         "void",
	INT8_T:       "int8_t",
	INT16_T:      "int16_t",
	INT32_T:      "int32_t",
	INT64_T:      "int64_t",
	UINT8_T:      "uint8_t",
	UINT16_T:     "uint16_t",
	UINT32_T:     "uint32_t",
	UINT64_T:     "uint64_t",
	MUL:          "'*'",
	LPAREN:       "'('",
	LBRACK:       "'['",
	LBRACE:       "'{'",
	COMMA:        "','",
	PERIOD:       "'.'",
	RPAREN:       "')'",
	RBRACK:       "']'",
	RBRACE:       "'}'",
	SEMICOLON:    "';'",
}

type TokenKind uint32

func (tk TokenKind) String() string {
	if uint32(tk) >= uint32(len(tokenKindToStr)) {
		return "Unknown"
	}
	ret := tokenKindToStr[tk]
	if ret == "" {
		return "Unknown"
	}
	return ret
}

//Token represents a grouping of characters
//that provide semantic meaning in a C declaration.
type Token struct {
	Kind TokenKind
	Val  string
	// Byte offset of the first character of Val in the source.
	Pos int
}

// End is the offset just past the token text.
func (t Token) End() int {
	return t.Pos + len(t.Val)
}

func (t Token) String() string {
	return fmt.Sprintf("%s at char %d", t.Val, t.Pos)
}
