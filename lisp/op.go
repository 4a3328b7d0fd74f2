package lisp

var langSpecialOps = []*langBuiltin{
	{name: "quote", formals: []string{"expr"}, special: true, fn: opQuote},
	{name: "lambda", formals: []string{"params", "body"}, special: true, fn: opLambda},
	{name: "defun", formals: []string{"name", "params", "body"}, special: true, fn: opDefun},
	{name: "cond", formals: []string{"clause"}, special: true, fn: opCond},
	{name: "while", formals: []string{"condition", "body"}, special: true, fn: opWhile},
	{name: "try", formals: []string{"expr", "fallback"}, special: true, fn: opTry},
	{name: "try_rename", formals: []string{"name", "expr"}, special: true, fn: opTryRename},
}

// unquote strips a (quote x) wrapper from an operand so that special
// operators accept both (lambda (x) x) and (lambda '(x) 'x).
func unquote(v *LVal) *LVal {
	if v.Type == LList && len(v.Cells) == 2 && v.Cells[0].Type == LSymbol && v.Cells[0].Str == QuoteSymbol {
		return v.Cells[1]
	}
	return v
}

func checkOperands(name string, args []*LVal, n int) error {
	if len(args) != n {
		return berrf(name, "expected %d function parameters, found %d", n, len(args))
	}
	return nil
}

func opQuote(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkOperands("quote", args, 1); err != nil {
		return nil, err
	}
	return args[0], nil
}

func opLambda(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkOperands("lambda", args, 2); err != nil {
		return nil, err
	}
	return newLambda("lambda", args[0], args[1])
}

func newLambda(name string, params *LVal, body *LVal) (*LVal, error) {
	params = unquote(params)
	if params.Type == LNil {
		params = List()
	}
	if params.Type != LList {
		return nil, berrf(name, "parameter list is not a list: %v", params.Type)
	}
	formals := make([]string, len(params.Cells))
	for i, p := range params.Cells {
		if p.Type != LSymbol {
			return nil, berrf(name, "parameter list contains a non-symbol: %v", p.Type)
		}
		for _, f := range formals[:i] {
			if f == p.Str {
				return nil, berrf(name, "duplicate parameter '%s'", p.Str)
			}
		}
		formals[i] = p.Str
	}
	return Lambda(formals, unquote(body)), nil
}

// opDefun binds a named function in the global scope.
func opDefun(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkOperands("defun", args, 3); err != nil {
		return nil, err
	}
	name := unquote(args[0])
	if name.Type != LSymbol {
		return nil, berrf("defun", "function name is not a symbol: %v", name.Type)
	}
	if IsBuiltin(name.Str) {
		return nil, berrf("defun", "cannot redefine builtin '%s'", name.Str)
	}
	fun, err := newLambda("defun", args[1], args[2])
	if err != nil {
		return nil, err
	}
	if err := env.PutGlobal(name.Str, fun); err != nil {
		return nil, err
	}
	return Nil(), nil
}

// opCond takes clauses of the form (condition result).  The result of the
// first clause whose condition is true is evaluated and returned.
func opCond(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, berrf("cond", "expected at least 1 function parameter, found 0")
	}
	for i, clause := range args {
		clause = unquote(clause)
		if clause.Type != LList || len(clause.Cells) != 2 {
			return nil, berrf("cond", "clause %d is not a (condition result) pair", i)
		}
		ok, err := env.Resolve(clause.Cells[0])
		if err != nil {
			return nil, addTrace(err, "cond")
		}
		if ok.Type != LBool {
			return nil, berrf("cond", "expected boolean at index %d", i)
		}
		if ok.Bool {
			v, err := env.Resolve(clause.Cells[1])
			if err != nil {
				return nil, addTrace(err, "cond")
			}
			return v, nil
		}
	}
	return nil, berrf("cond", "no condition was true")
}

// opWhile evaluates body for as long as condition is true and returns the
// last value of body, or nil if the body was never evaluated.
func opWhile(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkOperands("while", args, 2); err != nil {
		return nil, err
	}
	cond, body := unquote(args[0]), unquote(args[1])
	result := Nil()
	for {
		ok, err := env.Resolve(cond)
		if err != nil {
			return nil, addTrace(err, "while")
		}
		if ok.Type != LBool {
			return nil, berrf("while", "condition evaluated to %v, expected boolean", ok.Type)
		}
		if !ok.Bool {
			return result, nil
		}
		result, err = env.Resolve(body)
		if err != nil {
			return nil, addTrace(err, "while")
		}
	}
}

// opTry evaluates expr and, if it fails, evaluates fallback instead.
func opTry(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkOperands("try", args, 2); err != nil {
		return nil, err
	}
	v, err := env.Resolve(args[0])
	if err == nil {
		return v, nil
	}
	env.Runtime.Logger.Debug("try recovered from error", "error", err)
	return env.Resolve(args[1])
}

// opTryRename evaluates expr and relabels any error it raises so that it
// appears to originate from name, discarding the trace.
func opTryRename(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkOperands("try_rename", args, 2); err != nil {
		return nil, err
	}
	name, err := env.Resolve(args[0])
	if err != nil {
		return nil, err
	}
	if name.Type != LSymbol {
		if text, ok := name.Text(); ok && name.Len() > 0 {
			name = Symbol(text)
		} else {
			return nil, berrf("try_rename", "name is not a symbol or string: %v", name.Type)
		}
	}
	v, err := env.Resolve(args[1])
	if err != nil {
		lerr := AsError(err)
		return nil, &Error{Origin: name.Str, Message: lerr.Message}
	}
	return v, nil
}
