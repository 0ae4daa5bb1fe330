package parse

import (
	"github.com/cademtz/cdecl/lex"
)

// Storage class
type SClass int

const (
	SC_AUTO SClass = iota
	SC_EXTERN
	SC_STATIC
)

func (sc SClass) String() string {
	switch sc {
	case SC_EXTERN:
		return "extern"
	case SC_STATIC:
		return "static"
	}
	return ""
}

// Declaration is a complete top-level declaration. Exactly one of Var and
// Proto is set.
type Declaration struct {
	Storage SClass
	Var     *Variable
	Proto   *FunctionProto
}

// ParseDeclaration parses an optional storage class followed by either a
// function prototype or a named variable, and an optional ';'.
func ParseDeclaration(cur lex.TokenCursor) (*Declaration, lex.TokenCursor, error) {
	decl := &Declaration{}
	if tok, ok := cur.MatchAny(lex.EXTERN, lex.STATIC); ok {
		decl.Storage = SC_EXTERN
		if tok.Kind == lex.STATIC {
			decl.Storage = SC_STATIC
		}
	}

	var err error
	if isFunctionProto(cur) {
		decl.Proto, cur, err = ParseFunctionProto(cur)
	} else {
		decl.Var, cur, err = ParseVariable(cur, variableMask)
	}
	if err != nil {
		return nil, cur, err
	}
	cur.Match(lex.SEMICOLON)
	return decl, cur, nil
}

// isFunctionProto reports whether cur starts with a return type, a name and
// '('. The probe works on a copy of the cursor.
func isFunctionProto(cur lex.TokenCursor) bool {
	_, cur, err := ParseType(cur, returnMask)
	if err != nil {
		return false
	}
	return cur.MatchSequence(lex.IDENT, lex.LPAREN)
}

func parseAll[T any](src string, parse func(lex.TokenCursor) (T, lex.TokenCursor, error)) (T, error) {
	var zero T
	toks, err := lex.Tokenize(src)
	if err != nil {
		return zero, err
	}
	v, cur, err := parse(lex.NewTokenCursor(toks))
	if err != nil {
		return zero, err
	}
	if !cur.AtEOF() {
		return zero, errorPos(cur, cur.Pos(), "unexpected trailing input")
	}
	return v, nil
}

// ParseTypeString parses all of src as an abstract or named type.
func ParseTypeString(src string) (*Type, error) {
	return parseAll(src, func(cur lex.TokenCursor) (*Type, lex.TokenCursor, error) {
		return ParseType(cur, Blacklist(MaskNameRequired))
	})
}

func ParseVariableString(src string) (*Variable, error) {
	return parseAll(src, func(cur lex.TokenCursor) (*Variable, lex.TokenCursor, error) {
		return ParseVariable(cur, variableMask)
	})
}

func ParseArgumentString(src string) (Argument, error) {
	return parseAll(src, ParseArgument)
}

func ParseFunctionProtoString(src string) (*FunctionProto, error) {
	return parseAll(src, func(cur lex.TokenCursor) (*FunctionProto, lex.TokenCursor, error) {
		proto, cur, err := ParseFunctionProto(cur)
		if err == nil {
			cur.Match(lex.SEMICOLON)
		}
		return proto, cur, err
	})
}

func ParseDeclarationString(src string) (*Declaration, error) {
	return parseAll(src, ParseDeclaration)
}
