package parse

import "errors"

// Mask lists the grammar productions allowed while parsing a type. It is
// passed down through every recursive call so each context can narrow it.
type Mask uint32

const (
	MaskStructs Mask = 1 << iota
	MaskEnums
	MaskNameDecl
	MaskArrays
	MaskCallConvs
	MaskFunctions
	// A declared name must be present, not merely allowed.
	MaskNameRequired
)

var ErrNotPermitted = errors.New("not permitted in this context")

var maskToStr = map[Mask]string{
	MaskStructs:      "struct specifiers",
	MaskEnums:        "enum specifiers",
	MaskNameDecl:     "declared names",
	MaskArrays:       "array declarators",
	MaskCallConvs:    "calling conventions",
	MaskFunctions:    "function declarators",
	MaskNameRequired: "required names",
}

func (m Mask) String() string {
	if s, ok := maskToStr[m]; ok {
		return s
	}
	return "productions"
}

func Whitelist(bits ...Mask) Mask {
	var m Mask
	for _, b := range bits {
		m |= b
	}
	return m
}

func Blacklist(bits ...Mask) Mask {
	return ^Whitelist(bits...)
}

func (m Mask) Allows(b Mask) bool {
	return m&b == b
}

var (
	returnMask   = Blacklist(MaskNameDecl, MaskNameRequired, MaskArrays, MaskFunctions)
	argumentMask = Blacklist(MaskStructs, MaskCallConvs, MaskNameRequired)
	variableMask = Blacklist(MaskCallConvs)
)
