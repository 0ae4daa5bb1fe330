package parse

import (
	"errors"
	"fmt"
	"github.com/cademtz/cdecl/lex"
	"os"
	"runtime/debug"
	"strconv"
)

var (
	ErrNoPrimitive   = errors.New("expected a primitive type")
	ErrExpectedIdent = errors.New("expected an identifier")
)

func errorPos(cur lex.TokenCursor, pos int, m string, vals ...interface{}) error {
	err := fmt.Errorf(m, vals...)
	if os.Getenv("CDECLDEBUG") == "true" {
		err = fmt.Errorf("%w\n%s", err, debug.Stack())
	}
	return cur.Wrap(pos, err)
}

func notPermitted(cur lex.TokenCursor, pos int, m Mask) error {
	return errorPos(cur, pos, "%s %w", m, ErrNotPermitted)
}

// Specifier is the type keyword of a declaration. Tag is set for struct,
// union and enum specifiers.
type Specifier struct {
	Kind PrimitiveKind
	Tag  string
}

// ParsePrimitive matches exactly one type keyword. When there is none the
// error wraps ErrNoPrimitive and the caller decides whether that is fatal.
func ParsePrimitive(cur lex.TokenCursor, mask Mask) (Specifier, lex.TokenCursor, error) {
	begin := cur.Pos()
	tok, ok := cur.MatchAny(
		lex.INT8_T, lex.INT16_T, lex.INT32_T, lex.INT64_T,
		lex.UINT8_T, lex.UINT16_T, lex.UINT32_T, lex.UINT64_T,
		lex.CHAR, lex.INT, lex.FLOAT, lex.DOUBLE, lex.VOID,
		lex.STRUCT, lex.UNION, lex.ENUM,
	)
	if !ok {
		return Specifier{}, cur, errorPos(cur, begin, "%w", ErrNoPrimitive)
	}
	var spec Specifier
	switch tok.Kind {
	case lex.INT8_T:
		spec.Kind = Int8
	case lex.INT16_T:
		spec.Kind = Int16
	case lex.INT32_T:
		spec.Kind = Int32
	case lex.INT64_T:
		spec.Kind = Int64
	case lex.UINT8_T:
		spec.Kind = Uint8
	case lex.UINT16_T:
		spec.Kind = Uint16
	case lex.UINT32_T:
		spec.Kind = Uint32
	case lex.UINT64_T:
		spec.Kind = Uint64
	case lex.CHAR:
		spec.Kind = Char
	case lex.INT:
		spec.Kind = Int
	case lex.FLOAT:
		spec.Kind = Float
	case lex.DOUBLE:
		spec.Kind = Double
	case lex.VOID:
		spec.Kind = Void
	case lex.STRUCT, lex.UNION:
		if !mask.Allows(MaskStructs) {
			return spec, cur, notPermitted(cur, begin, MaskStructs)
		}
		spec.Kind = Struct
		if tok.Kind == lex.UNION {
			spec.Kind = Union
		}
		return parseTag(cur, begin, spec)
	case lex.ENUM:
		if !mask.Allows(MaskEnums) {
			return spec, cur, notPermitted(cur, begin, MaskEnums)
		}
		spec.Kind = Enum
		return parseTag(cur, begin, spec)
	default:
		return spec, cur, errorPos(cur, begin, "unhandled token %s", tok.Kind)
	}
	return spec, cur, nil
}

func parseTag(cur lex.TokenCursor, begin int, spec Specifier) (Specifier, lex.TokenCursor, error) {
	tag, ok := cur.Match(lex.IDENT)
	if !ok {
		if cur.PeekKind(lex.LBRACE) {
			return spec, cur, errorPos(cur, cur.Pos(), "%s bodies are not supported", spec.Kind)
		}
		return spec, cur, errorPos(cur, cur.Pos(), "expected a tag name after '%s'", spec.Kind)
	}
	spec.Tag = tag.Val
	return spec, cur, nil
}

// ParseBaseType parses specifiers around a type keyword into the innermost
// node of a type.
func ParseBaseType(cur lex.TokenCursor, mask Mask) (*Type, lex.TokenCursor, error) {
	begin := cur.Pos()

	prefix, cur, err := ParseFlags(cur)
	if err != nil {
		return nil, cur, err
	}

	spec, next, err := ParsePrimitive(cur, mask)
	if err != nil {
		// Integer-only specifiers alone imply int.
		if !errors.Is(err, ErrNoPrimitive) || !prefix.Has(IntOnly) {
			return nil, cur, err
		}
		spec = Specifier{Kind: Int}
		next = cur
	}
	cur = next

	postfix, cur, err := ParseFlags(cur)
	if err != nil {
		return nil, cur, err
	}

	flags, err := prefix.Combine(postfix)
	if err != nil {
		return nil, cur, errorPos(cur, begin, "%w", err)
	}

	switch {
	case spec.Kind == Float || spec.Kind == Double:
		if flags.Has(badFloat) {
			return nil, cur, errorPos(cur, begin, "%w", ErrFloatSpecifiers)
		}
		// MSVC accepts "long float" as a spelling of double.
		if spec.Kind == Float && flags.Has(Long) {
			flags.Bits &^= Long
			spec.Kind = Double
		}
	case !spec.Kind.IsIntegral() && flags.Has(IntOnly):
		return nil, cur, errorPos(cur, begin, "%w", ErrIntOnlyNonInt)
	}

	if spec.Tag != "" {
		return NewTagged(spec.Kind, spec.Tag, flags), cur, nil
	}
	return NewPrimitive(spec.Kind, flags), cur, nil
}

// ParseType parses a base type followed by its declarator: pointer layers,
// then either a parenthesised function pointer or an optional name with
// array suffixes. mask restricts which of these may appear.
func ParseType(cur lex.TokenCursor, mask Mask) (*Type, lex.TokenCursor, error) {
	begin := cur.Pos()

	t, cur, err := ParseBaseType(cur, mask)
	if err != nil {
		return nil, cur, err
	}
	baseConv := t.Conv()

	t, cur, err = parsePointers(cur, t, mask)
	if err != nil {
		return nil, cur, err
	}

	// A convention before a function pointer belongs to the function.
	group := mask.Allows(MaskFunctions) && startsFunctionGroup(cur)
	if baseConv != NoConv && !group && !mask.Allows(MaskCallConvs) {
		return nil, cur, notPermitted(cur, begin, MaskCallConvs)
	}

	name := ""
	if group {
		t, name, cur, err = parseFunctionGroup(cur, t, mask)
		if err != nil {
			return nil, cur, err
		}
	} else {
		if mask.Allows(MaskNameDecl) {
			if tok, ok := cur.Match(lex.IDENT); ok {
				name = tok.Val
			}
		}
		t, cur, err = parseArraySuffix(cur, t, mask)
		if err != nil {
			return nil, cur, err
		}
	}

	if countConvs(t) > 1 {
		return nil, cur, errorPos(cur, begin, "%w", ErrMultipleConvs)
	}
	if name != "" {
		t = t.withName(name)
	}
	return t, cur, nil
}

// parsePointers wraps t once for every '*'. The first '*' wraps the base
// type, each following one wraps the previous layer.
func parsePointers(cur lex.TokenCursor, t *Type, mask Mask) (*Type, lex.TokenCursor, error) {
	for {
		if _, ok := cur.Match(lex.MUL); !ok {
			return t, cur, nil
		}
		begin := cur.Pos()
		flags, next, err := ParseFlags(cur)
		if err != nil {
			return nil, cur, err
		}
		if flags.Has(IntOnly) {
			return nil, cur, errorPos(cur, begin, "%w", ErrIntOnlyPointer)
		}
		if flags.Conv != NoConv && !mask.Allows(MaskCallConvs) {
			return nil, cur, notPermitted(cur, begin, MaskCallConvs)
		}
		cur = next
		t = NewPointer(t, flags)
	}
}

// startsFunctionGroup looks for "(" [convention] "*" without consuming it.
func startsFunctionGroup(cur lex.TokenCursor) bool {
	if _, ok := cur.Match(lex.LPAREN); !ok {
		return false
	}
	cur.MatchAny(convKinds...)
	return cur.PeekKind(lex.MUL)
}

// parseFunctionGroup parses "( [convention] *... [name] ) ( params )" and
// returns pointers to a function returning ret.
func parseFunctionGroup(cur lex.TokenCursor, ret *Type, mask Mask) (*Type, string, lex.TokenCursor, error) {
	cur.Match(lex.LPAREN)
	conv := NoConv
	if tok, ok := cur.MatchAny(convKinds...); ok {
		conv = convFromKind(tok.Kind)
	}

	var layers []Flags
	for {
		if _, ok := cur.Match(lex.MUL); !ok {
			break
		}
		begin := cur.Pos()
		flags, next, err := ParseFlags(cur)
		if err != nil {
			return nil, "", cur, err
		}
		if flags.Has(IntOnly) {
			return nil, "", cur, errorPos(cur, begin, "%w", ErrIntOnlyPointer)
		}
		if flags.Conv != NoConv && !mask.Allows(MaskCallConvs) {
			return nil, "", cur, notPermitted(cur, begin, MaskCallConvs)
		}
		cur = next
		layers = append(layers, flags)
	}

	name := ""
	if mask.Allows(MaskNameDecl) {
		if tok, ok := cur.Match(lex.IDENT); ok {
			name = tok.Val
		}
	}
	if _, ok := cur.Match(lex.RPAREN); !ok {
		return nil, "", cur, errorPos(cur, cur.Pos(), "expected ')' to close the function declarator")
	}
	if _, ok := cur.Match(lex.LPAREN); !ok {
		return nil, "", cur, errorPos(cur, cur.Pos(), "expected function arguments in parentheses")
	}
	args, cur, err := parseParams(cur)
	if err != nil {
		return nil, "", cur, err
	}

	protoConv := conv
	if protoConv == NoConv {
		protoConv = declConv(ret)
	}
	t := NewFunction(&FunctionProto{ret: ret, args: args, conv: protoConv}, Flags{Conv: conv})
	for _, flags := range layers {
		t = NewPointer(t, flags)
	}
	return t, name, cur, nil
}

type arrayDim struct {
	n     int
	sized bool
}

// parseArraySuffix parses "[N]" and "[]" suffixes. The leftmost suffix is
// the outermost array.
func parseArraySuffix(cur lex.TokenCursor, t *Type, mask Mask) (*Type, lex.TokenCursor, error) {
	var dims []arrayDim
	for cur.PeekKind(lex.LBRACK) {
		begin := cur.Pos()
		if !mask.Allows(MaskArrays) {
			return nil, cur, notPermitted(cur, begin, MaskArrays)
		}
		cur.Advance()
		var d arrayDim
		if tok, ok := cur.Match(lex.INT_CONSTANT); ok {
			n, err := strconv.Atoi(tok.Val)
			if err != nil || n <= 0 {
				return nil, cur, errorPos(cur, begin+1, "invalid array size %s", tok.Val)
			}
			d = arrayDim{n: n, sized: true}
		}
		if _, ok := cur.Match(lex.RBRACK); !ok {
			return nil, cur, errorPos(cur, cur.Pos(), "expected ']'")
		}
		if len(dims) > 0 && !d.sized {
			return nil, cur, errorPos(cur, begin, "array has incomplete element type")
		}
		dims = append(dims, d)
	}
	if len(dims) > 0 && isVoid(t) {
		return nil, cur, errorPos(cur, cur.Pos(), "declaration of array of void")
	}
	for i := len(dims) - 1; i >= 0; i-- {
		t = NewArray(t, dims[i].n, dims[i].sized)
	}
	return t, cur, nil
}
