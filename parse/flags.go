package parse

import (
	"errors"
	"github.com/cademtz/cdecl/lex"
	"strings"
)

type FlagBits uint32

const (
	Pointer FlagBits = 1 << iota
	Volatile
	Const
	Signed
	Unsigned
	Long
	LongLong
	Short
)

const (
	// Specifiers that only make sense on integers.
	IntOnly = Short | Long | LongLong | Unsigned | Signed
	// long is left out, "long double" and "long float" are accepted.
	badFloat = Short | LongLong | Unsigned | Signed
)

var (
	ErrLongSpecs       = errors.New("invalid combination of 'long' specifiers")
	ErrMultipleConvs   = errors.New("cannot specify multiple calling conventions")
	ErrLongShort       = errors.New("cannot specify 'long' and 'short' together")
	ErrSignedUnsigned  = errors.New("cannot specify 'signed' and 'unsigned' together")
	ErrIntOnlyPointer  = errors.New("cannot use integer-only type specifiers on a pointer")
	ErrIntOnlyNonInt   = errors.New("cannot use integer-only type specifiers on a non-integer")
	ErrFloatSpecifiers = errors.New("invalid combination of type specifiers")
)

// Flags is an accumulated run of specifiers. Conv is NoConv unless a
// calling convention keyword was seen.
type Flags struct {
	Bits FlagBits
	Conv CallConv
}

// Has reports whether any of the bits in b are set.
func (f Flags) Has(b FlagBits) bool {
	return f.Bits&b != 0
}

// String lists the specifier keywords in f. The pointer bit is not a
// keyword and is left out.
func (f Flags) String() string {
	var words []string
	for _, fb := range flagWords {
		if f.Bits&fb.bit != 0 {
			words = append(words, fb.word)
		}
	}
	if f.Conv != NoConv {
		words = append(words, f.Conv.String())
	}
	return strings.Join(words, " ")
}

var flagWords = []struct {
	bit  FlagBits
	word string
}{
	{Const, "const"},
	{Volatile, "volatile"},
	{Signed, "signed"},
	{Unsigned, "unsigned"},
	{Short, "short"},
	{Long, "long"},
	{LongLong, "long long"},
}

var flagKinds = []lex.TokenKind{
	lex.CONST, lex.VOLATILE, lex.SIGNED, lex.UNSIGNED, lex.SHORT, lex.LONG,
	lex.CDECL, lex.STDCALL, lex.FASTCALL, lex.THISCALL, lex.VECTORCALL,
}

var convKinds = []lex.TokenKind{
	lex.CDECL, lex.STDCALL, lex.FASTCALL, lex.THISCALL, lex.VECTORCALL,
}

func convFromKind(k lex.TokenKind) CallConv {
	switch k {
	case lex.CDECL:
		return Cdecl
	case lex.STDCALL:
		return Stdcall
	case lex.FASTCALL:
		return Fastcall
	case lex.THISCALL:
		return Thiscall
	case lex.VECTORCALL:
		return Vectorcall
	}
	return NoConv
}

// ParseFlags folds the longest run of specifier keywords at cur into a
// Flags value. An empty run is not an error.
func ParseFlags(cur lex.TokenCursor) (Flags, lex.TokenCursor, error) {
	var f Flags
	for {
		begin := cur.Pos()
		tok, ok := cur.MatchAny(flagKinds...)
		if !ok {
			return f, cur, nil
		}
		switch tok.Kind {
		case lex.CONST:
			f.Bits |= Const
		case lex.VOLATILE:
			f.Bits |= Volatile
		case lex.SIGNED:
			f.Bits |= Signed
		case lex.UNSIGNED:
			f.Bits |= Unsigned
		case lex.SHORT:
			f.Bits |= Short
		case lex.LONG:
			switch {
			case f.Bits&LongLong != 0:
				return f, cur, errorPos(cur, begin, "%w", ErrLongSpecs)
			case f.Bits&Long != 0:
				f.Bits = f.Bits&^Long | LongLong
			default:
				f.Bits |= Long
			}
		default:
			if f.Conv != NoConv {
				return f, cur, errorPos(cur, begin, "%w", ErrMultipleConvs)
			}
			f.Conv = convFromKind(tok.Kind)
		}
	}
}

// Combine merges two runs of specifiers, as C allows them on both sides of
// the type keyword ("long int unsigned").
func (f Flags) Combine(other Flags) (Flags, error) {
	conv := f.Conv
	if other.Conv != NoConv {
		if conv != NoConv {
			return Flags{}, ErrMultipleConvs
		}
		conv = other.Conv
	}
	if (f.Bits&LongLong != 0 && other.Bits&(Long|LongLong) != 0) ||
		(other.Bits&LongLong != 0 && f.Bits&(Long|LongLong) != 0) {
		return Flags{}, ErrLongSpecs
	}
	bits := f.Bits | other.Bits
	if f.Bits&Long != 0 && other.Bits&Long != 0 {
		bits = bits&^Long | LongLong
	}
	if bits&Short != 0 && bits&(Long|LongLong) != 0 {
		return Flags{}, ErrLongShort
	}
	if bits&Signed != 0 && bits&Unsigned != 0 {
		return Flags{}, ErrSignedUnsigned
	}
	return Flags{Bits: bits, Conv: conv}, nil
}
