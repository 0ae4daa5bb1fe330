package parse

type PrimitiveKind int

const (
	Int8 PrimitiveKind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Char
	Enum
	Float
	Double
	Int
	Struct
	Union
	Void
)

var primitiveKindToStr = [...]string{
	Int8:   "int8_t",
	Int16:  "int16_t",
	Int32:  "int32_t",
	Int64:  "int64_t",
	Uint8:  "uint8_t",
	Uint16: "uint16_t",
	Uint32: "uint32_t",
	Uint64: "uint64_t",
	Char:   "char",
	Enum:   "enum",
	Float:  "float",
	Double: "double",
	Int:    "int",
	Struct: "struct",
	Union:  "union",
	Void:   "void",
}

func (p PrimitiveKind) String() string {
	if p < 0 || int(p) >= len(primitiveKindToStr) {
		return "Unknown"
	}
	return primitiveKindToStr[p]
}

// IsIntegral reports whether integer-only specifiers (signed, unsigned,
// short, long) may be applied to p.
func (p PrimitiveKind) IsIntegral() bool {
	switch p {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Char, Int:
		return true
	default:
		return false
	}
}

func (p PrimitiveKind) IsNumeric() bool {
	if p.IsIntegral() {
		return true
	}
	return p == Float || p == Double
}

type CallConv int

const (
	NoConv CallConv = iota
	Cdecl
	Stdcall
	Fastcall
	Thiscall
	Vectorcall
)

var callConvToStr = [...]string{
	NoConv:     "",
	Cdecl:      "__cdecl",
	Stdcall:    "__stdcall",
	Fastcall:   "__fastcall",
	Thiscall:   "__thiscall",
	Vectorcall: "__vectorcall",
}

func (c CallConv) String() string {
	if c < 0 || int(c) >= len(callConvToStr) {
		return "Unknown"
	}
	return callConvToStr[c]
}

// Base is what one layer of a Type is built on. It is one of
// PrimitiveKind, *Type (the pointee of a pointer), *FunctionProto or *Array.
type Base interface {
	isBase()
}

func (PrimitiveKind) isBase()  {}
func (*Type) isBase()          {}
func (*FunctionProto) isBase() {}
func (*Array) isBase()         {}

// Type is one level of a declared type. Types are immutable once built and
// may be shared by any number of parents.
type Type struct {
	base  Base
	flags Flags
	// Declared name, empty for abstract declarators.
	name string
	// Tag of a struct, union or enum.
	tag string
}

func NewPrimitive(p PrimitiveKind, flags Flags) *Type {
	return &Type{base: p, flags: flags}
}

// NewTagged builds a struct, union or enum type named by tag.
func NewTagged(p PrimitiveKind, tag string, flags Flags) *Type {
	return &Type{base: p, flags: flags, tag: tag}
}

func NewPointer(to *Type, flags Flags) *Type {
	flags.Bits |= Pointer
	return &Type{base: to, flags: flags}
}

func NewFunction(proto *FunctionProto, flags Flags) *Type {
	return &Type{base: proto, flags: flags}
}

func NewArray(elem *Type, dim int, sized bool) *Type {
	return &Type{base: &Array{elem: elem, dim: dim, sized: sized}}
}

func (t *Type) withName(name string) *Type {
	ret := *t
	ret.name = name
	return &ret
}

func (t *Type) Base() Base    { return t.base }
func (t *Type) Flags() Flags  { return t.flags }
func (t *Type) Name() string  { return t.name }
func (t *Type) HasName() bool { return t.name != "" }
func (t *Type) Tag() string   { return t.tag }

// Conv is the calling convention written at this level, if any.
func (t *Type) Conv() CallConv { return t.flags.Conv }

func (t *Type) IsPointer() bool  { return t.flags.Bits&Pointer != 0 }
func (t *Type) IsConst() bool    { return t.flags.Bits&Const != 0 }
func (t *Type) IsVolatile() bool { return t.flags.Bits&Volatile != 0 }
func (t *Type) IsLong() bool     { return t.flags.Bits&Long != 0 }
func (t *Type) IsLongLong() bool { return t.flags.Bits&LongLong != 0 }

func (t *Type) Primitive() (PrimitiveKind, bool) {
	p, ok := t.base.(PrimitiveKind)
	return p, ok
}

func (t *Type) Pointee() (*Type, bool) {
	p, ok := t.base.(*Type)
	return p, ok
}

func (t *Type) FunctionProto() (*FunctionProto, bool) {
	p, ok := t.base.(*FunctionProto)
	return p, ok
}

func (t *Type) Array() (*Array, bool) {
	a, ok := t.base.(*Array)
	return a, ok
}

// Array is a fixed or unsized array of elem.
type Array struct {
	elem  *Type
	dim   int
	sized bool
}

func (a *Array) Elem() *Type { return a.elem }

// Dim returns the number of elements, false for an unsized array.
func (a *Array) Dim() (int, bool) { return a.dim, a.sized }

// next returns the type nested directly inside t within the same
// declaration. Parameter lists are separate declarations and are not entered.
func (t *Type) next() *Type {
	switch b := t.base.(type) {
	case *Type:
		return b
	case *Array:
		return b.elem
	case *FunctionProto:
		return b.ret
	}
	return nil
}

// declConv returns the calling convention written anywhere along the
// chain starting at t.
func declConv(t *Type) CallConv {
	for ; t != nil; t = t.next() {
		if t.flags.Conv != NoConv {
			return t.flags.Conv
		}
	}
	return NoConv
}

func countConvs(t *Type) int {
	n := 0
	for ; t != nil; t = t.next() {
		if t.flags.Conv != NoConv {
			n++
		}
	}
	return n
}

func isVoid(t *Type) bool {
	p, ok := t.Primitive()
	return ok && p == Void
}
