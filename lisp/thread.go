package lisp

import (
	"bytes"
	"fmt"
	"io"
)

type threadResult struct {
	value    *LVal
	err      error
	panicked interface{}
}

// threadOutput holds everything a thread printed.  A thread writes only to
// its own buffers and the parent reads them once the thread has reported.
type threadOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (out *threadOutput) flush(rt *Runtime) {
	if _, err := io.Copy(rt.Stdout, &out.stdout); err != nil {
		rt.Logger.Error("unable to write thread output", "error", err)
	}
	if _, err := io.Copy(rt.Stderr, &out.stderr); err != nil {
		rt.Logger.Error("unable to write thread output", "error", err)
	}
}

// builtinSpawn evaluates each program on its own goroutine using a fresh
// interpreter and returns the list of their results in launch order.
// Programs share no bindings or writers with the caller or with each other.
// Every thread is joined before spawn returns, and their output is copied to
// the caller's writers in launch order.
func builtinSpawn(env *LEnv, args []*LVal) (*LVal, error) {
	progs := make([]*LVal, len(args))
	for i, arg := range args {
		if arg.Type != LList {
			return nil, berrf("spawn", "thread %d: program is not a list: %v", i, arg.Type)
		}
		progs[i] = arg.Copy()
	}
	done := make([]chan threadResult, len(progs))
	outputs := make([]*threadOutput, len(progs))
	for i := range progs {
		done[i] = make(chan threadResult, 1)
		outputs[i] = new(threadOutput)
		env.Runtime.Logger.Debug("spawning thread", "thread", i)
		go runThread(env.Runtime, progs[i], outputs[i], done[i])
	}
	var err error
	results := make([]*LVal, len(progs))
	for i := range done {
		res := <-done[i]
		outputs[i].flush(env.Runtime)
		if err != nil {
			continue
		}
		switch {
		case res.panicked != nil:
			env.Runtime.Logger.Error("thread panicked", "thread", i, "panic", res.panicked)
			err = berrf("spawn", "thread %d panicked: %v", i, res.panicked)
		case res.err != nil:
			err = addTrace(res.err, fmt.Sprintf("thread %d", i))
		default:
			results[i] = res.value
		}
	}
	if err != nil {
		return nil, err
	}
	return List(results...), nil
}

func runThread(rt *Runtime, prog *LVal, out *threadOutput, done chan<- threadResult) {
	var res threadResult
	defer func() {
		if r := recover(); r != nil {
			res = threadResult{panicked: r}
		}
		done <- res
	}()
	ip := NewInterpreter(inheritRuntime(rt, out))
	res.value, res.err = ip.Eval(prog)
}
