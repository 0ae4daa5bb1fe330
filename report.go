package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cademtz/cdecl/lex"
	"modernc.org/mathutil"
)

// errReported is returned once a diagnostic has already been printed.
var errReported = errors.New("errors were reported")

// reportError prints err and, when it carries a location, the source line
// with a caret under the offending character.
func reportError(w io.Writer, src string, err error) {
	fmt.Fprintln(w, err)
	var errLoc lex.ErrorLoc
	if !errors.As(err, &errLoc) {
		return
	}
	fmt.Fprintln(w, src)
	col := mathutil.Min(mathutil.Max(errLoc.Offset, 0), len(src))
	for i := 0; i < col; i++ {
		// Keep tabs so the caret lines up with the line above.
		if src[i] == '\t' {
			fmt.Fprintf(w, "%c", '\t')
		} else {
			fmt.Fprintf(w, "%c", ' ')
		}
	}
	fmt.Fprintln(w, "^")
	fmt.Fprintln(w, "")
}
