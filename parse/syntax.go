package parse

import (
	"errors"
	"github.com/cademtz/cdecl/lex"
)

var ErrVariadicNotLast = errors.New("variadic marker must be the last argument")

// Variable is a named, typed declaration.
type Variable struct {
	typ  *Type
	name string
}

func NewVariable(t *Type, name string) *Variable {
	return &Variable{typ: t, name: name}
}

func (v *Variable) Type() *Type  { return v.typ }
func (v *Variable) Name() string { return v.name }

// ParseVariable parses a type and the name it declares. With
// MaskNameRequired in mask a missing name is an error, otherwise the
// variable is simply left unnamed.
func ParseVariable(cur lex.TokenCursor, mask Mask) (*Variable, lex.TokenCursor, error) {
	t, cur, err := ParseType(cur, mask|MaskNameDecl)
	if err != nil {
		return nil, cur, err
	}
	if !t.HasName() && mask.Allows(MaskNameRequired) {
		return nil, cur, errorPos(cur, cur.Pos(), "%w", ErrExpectedIdent)
	}
	return NewVariable(t, t.Name()), cur, nil
}

type ArgKind int

const (
	ArgType ArgKind = iota
	ArgVariable
	ArgVariadic
)

// Argument is one function parameter: a bare type, a named variable or the
// variadic marker.
type Argument struct {
	kind ArgKind
	typ  *Type
	v    *Variable
}

func TypeArgument(t *Type) Argument {
	return Argument{kind: ArgType, typ: t}
}

func VariableArgument(v *Variable) Argument {
	return Argument{kind: ArgVariable, typ: v.Type(), v: v}
}

func VariadicArgument() Argument {
	return Argument{kind: ArgVariadic}
}

func (a Argument) Kind() ArgKind    { return a.kind }
func (a Argument) IsVariadic() bool { return a.kind == ArgVariadic }
func (a Argument) IsVariable() bool { return a.kind == ArgVariable }
func (a Argument) IsType() bool     { return a.kind == ArgType }

// Type returns the parameter type of a bare type or variable argument, nil
// for the variadic marker.
func (a Argument) Type() *Type {
	return a.typ
}

func (a Argument) Variable() (*Variable, bool) {
	return a.v, a.kind == ArgVariable
}

// ParseArgument parses one parameter. Struct specifiers are not allowed in
// parameter position.
func ParseArgument(cur lex.TokenCursor) (Argument, lex.TokenCursor, error) {
	if cur.MatchSequence(lex.PERIOD, lex.PERIOD, lex.PERIOD) {
		return VariadicArgument(), cur, nil
	}
	t, cur, err := ParseType(cur, argumentMask)
	if err != nil {
		return Argument{}, cur, err
	}
	if t.HasName() {
		return VariableArgument(NewVariable(t, t.Name())), cur, nil
	}
	return TypeArgument(t), cur, nil
}

// FunctionProto is a function signature. The name is empty for the
// prototype behind a function pointer.
type FunctionProto struct {
	ret  *Type
	name string
	args []Argument
	conv CallConv
}

func NewFunctionProto(name string, ret *Type, args []Argument, conv CallConv) *FunctionProto {
	return &FunctionProto{
		ret:  ret,
		name: name,
		args: append([]Argument(nil), args...),
		conv: conv,
	}
}

func (p *FunctionProto) Ret() *Type         { return p.ret }
func (p *FunctionProto) Name() string       { return p.name }
func (p *FunctionProto) HasName() bool      { return p.name != "" }
func (p *FunctionProto) NumArgs() int       { return len(p.args) }
func (p *FunctionProto) Arg(i int) Argument { return p.args[i] }

// Args returns a copy of the argument list.
func (p *FunctionProto) Args() []Argument {
	return append([]Argument(nil), p.args...)
}

func (p *FunctionProto) IsVariadic() bool {
	return len(p.args) > 0 && p.args[len(p.args)-1].IsVariadic()
}

// Conv is the calling convention written in the declaration, NoConv if
// none was.
func (p *FunctionProto) Conv() CallConv {
	return p.conv
}

func (p *FunctionProto) ConvOrDefault(def CallConv) CallConv {
	if p.conv == NoConv {
		return def
	}
	return p.conv
}

// ParseFunctionProto parses "ret name ( params )".
func ParseFunctionProto(cur lex.TokenCursor) (*FunctionProto, lex.TokenCursor, error) {
	ret, cur, err := ParseType(cur, returnMask)
	if err != nil {
		return nil, cur, err
	}

	tok, ok := cur.Match(lex.IDENT)
	if !ok {
		return nil, cur, errorPos(cur, cur.Pos(), "%w", ErrExpectedIdent)
	}
	if _, ok := cur.Match(lex.LPAREN); !ok {
		return nil, cur, errorPos(cur, cur.Pos(), "expected function arguments in parentheses")
	}

	args, cur, err := parseParams(cur)
	if err != nil {
		return nil, cur, err
	}
	return &FunctionProto{ret: ret, name: tok.Val, args: args, conv: declConv(ret)}, cur, nil
}

// parseParams parses a parameter list up to and including ')'. The opening
// '(' has already been consumed.
func parseParams(cur lex.TokenCursor) ([]Argument, lex.TokenCursor, error) {
	var args []Argument
	if _, ok := cur.Match(lex.RPAREN); ok {
		return args, cur, nil
	}
	params := newScope()
	for {
		begin := cur.Pos()
		if len(args) > 0 && args[len(args)-1].IsVariadic() {
			return nil, cur, errorPos(cur, begin, "%w", ErrVariadicNotLast)
		}
		arg, next, err := ParseArgument(cur)
		if err != nil {
			return nil, cur, err
		}
		cur = next
		if v, ok := arg.Variable(); ok {
			if err := params.define(v.Name(), arg); err != nil {
				return nil, cur, errorPos(cur, begin, "%w", err)
			}
		}
		args = append(args, arg)

		if _, ok := cur.Match(lex.COMMA); ok {
			continue
		}
		if _, ok := cur.Match(lex.RPAREN); ok {
			return args, cur, nil
		}
		return nil, cur, errorPos(cur, cur.Pos(), "expected ',' or ')' after argument")
	}
}
