package lisp

import (
	"io"
	"log/slog"
	"os"
)

// Runtime holds the state shared by every scope of an environment.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Reader Reader
}

func newRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: defaultLogger(),
	}
}

// LEnv is a lisp environment: a stack of scopes with the global scope at the
// bottom.  An LEnv must not be used by multiple goroutines concurrently.
type LEnv struct {
	Scopes    []Scope
	MaxHeight int
	Runtime   *Runtime
}

// NewEnv returns an environment containing only an empty global scope.
func NewEnv(rt *Runtime) *LEnv {
	if rt == nil {
		rt = newRuntime()
	}
	return &LEnv{
		Scopes:    []Scope{{}},
		MaxHeight: DefaultMaxHeight,
		Runtime:   rt,
	}
}

// EvalList evaluates the expression list.  A new scope, containing bindings
// if any, is pushed for the duration of the evaluation.
func (env *LEnv) EvalList(expr *LVal, bindings Scope) (*LVal, error) {
	if err := env.checkHeight(); err != nil {
		return nil, err
	}
	env.Push(bindings)
	defer env.Pop()
	return env.evalCells(expr.Cells)
}

func (env *LEnv) evalCells(cells []*LVal) (*LVal, error) {
	if len(cells) == 0 {
		return Nil(), nil
	}
	head, args := cells[0], cells[1:]
	switch head.Type {
	case LSymbol:
		if fun, ok := lookupBuiltin(head.Str); ok {
			return env.callBuiltin(fun, args)
		}
		f, err := env.Get(head.Str)
		if err != nil || f.Type != LLambda {
			return nil, Errorf("unknown function '%s'", head.Str)
		}
		return env.apply(head.Str, f, args)
	case LList:
		v, err := env.EvalList(head, nil)
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return v, nil
		}
		spliced := make([]*LVal, 0, len(cells))
		spliced = append(spliced, v)
		spliced = append(spliced, args...)
		return env.EvalList(List(spliced...), nil)
	case LLambda:
		if len(args) == 0 {
			return head, nil
		}
		return env.apply(LambdaSymbol, head, args)
	default:
		return nil, Errorf("expected function name as first list item, found %v", head.Type)
	}
}

// apply resolves args and invokes fun.  The name fun was called by is added
// to the trace of any error.
func (env *LEnv) apply(name string, fun *LVal, args []*LVal) (*LVal, error) {
	if err := checkArity(name, fun.Arity(), len(args), fun.variadic()); err != nil {
		return nil, err
	}
	vals, err := env.resolveAll(args)
	if err != nil {
		return nil, err
	}
	v, err := env.Call(fun, vals)
	if err != nil {
		return nil, addTrace(err, name)
	}
	return v, nil
}

// Call invokes fun with already evaluated arguments.  Passing fewer
// arguments than fun expects returns a new function with the arguments
// bound.
func (env *LEnv) Call(fun *LVal, args []*LVal) (*LVal, error) {
	if fun.Type != LLambda {
		return nil, Errorf("not a function: %v", fun.Type)
	}
	n := fun.Arity()
	if err := checkArity(LambdaSymbol, n, len(args), fun.variadic()); err != nil {
		return nil, err
	}
	if len(args) < n {
		return fun.bind(args), nil
	}
	if fun.Builtin != "" {
		b, ok := lookupBuiltin(fun.Builtin)
		if !ok {
			return nil, Errorf("unknown builtin '%s'", fun.Builtin)
		}
		return b.fn(env, fun.withBound(args))
	}
	scope := make(Scope, len(fun.Formals))
	for i, v := range fun.withBound(args) {
		scope[fun.Formals[i]] = v
	}
	if fun.Body.Type == LList {
		return env.EvalList(fun.Body, scope)
	}
	if err := env.checkHeight(); err != nil {
		return nil, err
	}
	env.Push(scope)
	defer env.Pop()
	return env.Resolve(fun.Body)
}

// Resolve produces the value of an argument.  Lists are evaluated, symbols
// are looked up, nil resolves to the empty list and everything else
// resolves to itself.  A symbol naming a builtin function which is not
// shadowed by a variable resolves to a function value invoking the builtin.
func (env *LEnv) Resolve(v *LVal) (*LVal, error) {
	switch v.Type {
	case LList:
		return env.EvalList(v, nil)
	case LSymbol:
		x, err := env.Get(v.Str)
		if err == nil {
			return x, nil
		}
		if fun, ok := lookupBuiltin(v.Str); ok && !fun.special {
			return builtinRef(fun), nil
		}
		return nil, err
	case LNil:
		return List(), nil
	default:
		return v, nil
	}
}

func (env *LEnv) resolveAll(args []*LVal) ([]*LVal, error) {
	vals := make([]*LVal, len(args))
	for i := range args {
		v, err := env.Resolve(args[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// checkArity rejects calls with more arguments than a function expects and
// calls with no arguments to a function which expects some.
func checkArity(name string, n int, nargs int, variadic bool) error {
	if (nargs > n && !variadic) || (nargs == 0 && n > 0) {
		return berrf(name, "expected %d function parameters, found %d", n, nargs)
	}
	return nil
}

func (v *LVal) variadic() bool {
	if v.Builtin == "" {
		return false
	}
	b, ok := lookupBuiltin(v.Builtin)
	return ok && b.variadic
}

func (v *LVal) withBound(args []*LVal) []*LVal {
	if len(v.Bound) == 0 {
		return args
	}
	all := make([]*LVal, 0, len(v.Bound)+len(args))
	all = append(all, v.Bound...)
	return append(all, args...)
}

func (v *LVal) bind(args []*LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Formals: v.Formals,
		Bound:   v.withBound(args),
		Body:    v.Body,
		Builtin: v.Builtin,
	}
}
