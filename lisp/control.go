package lisp

import (
	"fmt"
	"strings"
)

func symbolName(name string, v *LVal) (string, error) {
	if v.Type != LSymbol {
		return "", berrf(name, "first argument is not a symbol: %v", v.Type)
	}
	return v.Str, nil
}

func builtinSet(env *LEnv, args []*LVal) (*LVal, error) {
	name, err := symbolName("set", args[0])
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, args[1]); err != nil {
		return nil, err
	}
	return Nil(), nil
}

func builtinGlobal(env *LEnv, args []*LVal) (*LVal, error) {
	name, err := symbolName("global", args[0])
	if err != nil {
		return nil, err
	}
	if err := env.PutGlobal(name, args[1]); err != nil {
		return nil, err
	}
	return Nil(), nil
}

// builtinSeq returns its last argument.  Arguments have already been
// evaluated in order.
func builtinSeq(env *LEnv, args []*LVal) (*LVal, error) {
	return args[len(args)-1], nil
}

func builtinEval(env *LEnv, args []*LVal) (*LVal, error) {
	v, err := env.Resolve(args[0])
	if err != nil {
		return nil, addTrace(err, "eval")
	}
	return v, nil
}

func builtinThrow(env *LEnv, args []*LVal) (*LVal, error) {
	msg, ok := args[0].Text()
	if !ok {
		return nil, berrf("throw", "argument is not a string: %v", args[0].Type)
	}
	return nil, &Error{Message: msg}
}

func builtinType(env *LEnv, args []*LVal) (*LVal, error) {
	return Symbol(args[0].Type.String()), nil
}

// builtinFormat replaces each placeholder in a template string with the
// display form of the corresponding argument.
func builtinFormat(env *LEnv, args []*LVal) (*LVal, error) {
	tmpl, ok := args[0].Text()
	if !ok {
		return nil, berrf("format", "template is not a string: %v", args[0].Type)
	}
	parts := strings.Split(tmpl, FormatPlaceholder)
	vals := args[1:]
	if len(parts)-1 != len(vals) {
		return nil, berrf("format", "template expects %d arguments, found %d", len(parts)-1, len(vals))
	}
	var buf strings.Builder
	for i, part := range parts {
		buf.WriteString(part)
		if i < len(vals) {
			buf.WriteString(vals[i].String())
		}
	}
	return String(buf.String()), nil
}

func builtinPrint(env *LEnv, args []*LVal) (*LVal, error) {
	return env.write("print", args[0].String()+"\n")
}

func builtinPrintFmt(env *LEnv, args []*LVal) (*LVal, error) {
	return env.write("printfmt", args[0].DebugString()+"\n")
}

func builtinPuts(env *LEnv, args []*LVal) (*LVal, error) {
	text, ok := args[0].Text()
	if !ok {
		return nil, berrf("puts", "argument is not a string: %v", args[0].Type)
	}
	return env.write("puts", text)
}

func builtinPutsln(env *LEnv, args []*LVal) (*LVal, error) {
	text, ok := args[0].Text()
	if !ok {
		return nil, berrf("putsln", "argument is not a string: %v", args[0].Type)
	}
	return env.write("putsln", text+"\n")
}

func (env *LEnv) write(name string, text string) (*LVal, error) {
	_, err := fmt.Fprint(env.Runtime.Stdout, text)
	if err != nil {
		return nil, berrf(name, "%v", err)
	}
	return Nil(), nil
}
