package lisp

import (
	"io"
)

// Reader reads lisp source text.
type Reader interface {
	// Parse reads text and returns an expression list containing each
	// top-level item in order.  Name identifies the source in errors.
	Parse(name string, text string) (*LVal, error)

	// Forms splits the contents of r into its top-level forms.  Text outside
	// of any form is ignored.  Text which cannot be split is reported as a
	// Form carrying an error, in source order.  Forms returns an error only
	// when r cannot be read.
	Forms(name string, r io.Reader) ([]Form, error)
}

// Form is the source text of one top-level form, or the error that stopped
// a region of source from being split into forms.
type Form struct {
	Text string
	Err  error
}
