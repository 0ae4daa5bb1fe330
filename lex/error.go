package lex

import "fmt"

// ErrorLoc is an error pinned to a byte offset of the source text.
// Preview holds the text found at that offset.
type ErrorLoc struct {
	Err     error
	Offset  int
	Preview string
}

func ErrWithLoc(e error, offset int, preview string) error {
	return ErrorLoc{
		Err:     e,
		Offset:  offset,
		Preview: preview,
	}
}

func (e ErrorLoc) Error() string {
	return fmt.Sprintf("\"%s\" (at char %d): %s", e.Preview, e.Offset, e.Err)
}

func (e ErrorLoc) Unwrap() error {
	return e.Err
}
