package lisp

import (
	"io"
	"log/slog"
	"os"
)

// Config is a function that configures an interpreter or its runtime.
type Config func(ip *Interpreter) error

// Loader is a function that loads lisp code into an interpreter, typically
// by defining functions in its global scope.
type Loader func(ip *Interpreter) error

// WithMaximumStackHeight returns a Config that will prevent an interpreter
// from allowing its stack to grow beyond n scopes.  A value of zero or less
// removes the limit, in which case unbounded recursion can exhaust the go
// stack and crash the process.
func WithMaximumStackHeight(n int) Config {
	return func(ip *Interpreter) error {
		ip.env.MaxHeight = n
		return nil
	}
}

// WithLoader returns a Config that executes fn.  Loaders run in the order
// they are given, after any options preceding them.
func WithLoader(fn Loader) Config {
	return func(ip *Interpreter) error {
		return fn(ip)
	}
}

// WithReader returns a Config that makes interpreters use r to parse source
// text.  There is no default Reader for an interpreter.
func WithReader(r Reader) Config {
	return func(ip *Interpreter) error {
		ip.env.Runtime.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes interpreters write program output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(ip *Interpreter) error {
		ip.env.Runtime.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes interpreters write error reports
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(ip *Interpreter) error {
		ip.env.Runtime.Stderr = w
		return nil
	}
}

// WithLogger returns a Config that makes interpreters log diagnostics to
// logger.
func WithLogger(logger *slog.Logger) Config {
	return func(ip *Interpreter) error {
		if logger == nil {
			logger = discardLogger()
		}
		ip.env.Runtime.Logger = logger
		return nil
	}
}

// inheritRuntime copies the logger and reader of rt and directs program
// output into out.
func inheritRuntime(rt *Runtime, out *threadOutput) Config {
	return func(ip *Interpreter) error {
		ip.env.Runtime.Stdout = &out.stdout
		ip.env.Runtime.Stderr = &out.stderr
		ip.env.Runtime.Logger = rt.Logger
		ip.env.Runtime.Reader = rt.Reader
		return nil
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
