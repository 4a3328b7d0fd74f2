package lisp

import (
	"errors"
	"fmt"
	"io"
)

// Error is a lisp runtime error.  Origin names the builtin or function which
// raised the error, when known.  Trace lists the calls the error unwound
// through, innermost first.
type Error struct {
	Origin  string
	Message string
	Trace   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Origin == "" {
		return e.Message
	}
	return e.Origin + ": " + e.Message
}

// AddTrace appends frame to the trace of e and returns e.
func (e *Error) AddTrace(frame string) *Error {
	e.Trace = append(e.Trace, frame)
	return e
}

// DebugPrint prints e followed by its trace.
func (e *Error) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Error: %s\n", e.Error())
	if err != nil {
		return n, err
	}
	for _, frame := range e.Trace {
		_n, err := fmt.Fprintf(w, "    ...at '%s'\n", frame)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Errorf returns an Error with a formatted message and no origin.
func Errorf(format string, v ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, v...)}
}

// berrf returns an Error raised by the named builtin.
func berrf(origin string, format string, v ...interface{}) *Error {
	return &Error{Origin: origin, Message: fmt.Sprintf(format, v...)}
}

// invalidTypes returns a type error listing the kind of every operand.
func invalidTypes(origin string, vals ...*LVal) *Error {
	var buf []byte
	for i, v := range vals {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, v.Type.String()...)
	}
	return berrf(origin, "invalid types: %s", buf)
}

// AsError converts err into an *Error.  Errors not raised by the lisp
// runtime are wrapped with their message preserved.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr
	}
	return &Error{Message: err.Error()}
}

func addTrace(err error, frame string) error {
	return AsError(err).AddTrace(frame)
}
