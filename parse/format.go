package parse

import (
	"fmt"
	"strings"
)

func joinWords(words ...string) string {
	var ret []string
	for _, w := range words {
		if w != "" {
			ret = append(ret, w)
		}
	}
	return strings.Join(ret, " ")
}

// String renders t in a compact nested form, e.g. "p: ptr(const char)".
func (t *Type) String() string {
	var body string
	switch b := t.base.(type) {
	case PrimitiveKind:
		body = joinWords(t.flags.String(), b.String(), t.tag)
	case *Type:
		body = joinWords(t.flags.String(), "ptr("+b.String()+")")
	case *Array:
		dim := ""
		if n, ok := b.Dim(); ok {
			dim = fmt.Sprint(n)
		}
		body = fmt.Sprintf("array[%s](%s)", dim, b.elem)
	case *FunctionProto:
		body = joinWords(t.flags.String(), b.signature())
	}
	if t.name != "" {
		return t.name + ": " + body
	}
	return body
}

func (a Argument) String() string {
	if a.kind == ArgVariadic {
		return "..."
	}
	return a.typ.String()
}

func (v *Variable) String() string {
	if v.name == "" || v.typ.name == v.name {
		return v.typ.String()
	}
	return v.name + ": " + v.typ.String()
}

func (p *FunctionProto) signature() string {
	args := make([]string, len(p.args))
	for i, a := range p.args {
		args[i] = a.String()
	}
	return "fn(" + strings.Join(args, ", ") + ") " + p.ret.String()
}

func (p *FunctionProto) String() string {
	if p.name == "" {
		return p.signature()
	}
	return p.name + ": " + p.signature()
}

func (d *Declaration) String() string {
	if d.Proto != nil {
		return joinWords(d.Storage.String(), d.Proto.String())
	}
	return joinWords(d.Storage.String(), d.Var.String())
}
