package lisp

// Scope is a single frame of variable bindings.
type Scope map[string]*LVal

// Push adds a new frame to the top of the stack.  Push does not enforce a
// maximum height; callers which evaluate code use checkHeight first.
func (env *LEnv) Push(s Scope) {
	if s == nil {
		s = Scope{}
	}
	env.Scopes = append(env.Scopes, s)
}

// Pop removes the top frame from the stack.  Pop panics if the stack is
// empty.
func (env *LEnv) Pop() Scope {
	if len(env.Scopes) == 0 {
		panic("pop called on an empty stack")
	}
	top := env.Scopes[len(env.Scopes)-1]
	env.Scopes[len(env.Scopes)-1] = nil
	env.Scopes = env.Scopes[:len(env.Scopes)-1]
	return top
}

// Height returns the number of frames on the stack.
func (env *LEnv) Height() int {
	return len(env.Scopes)
}

// Get returns the value bound to name in the topmost frame defining it.
func (env *LEnv) Get(name string) (*LVal, error) {
	for i := len(env.Scopes) - 1; i >= 0; i-- {
		if v, ok := env.Scopes[i][name]; ok {
			return v, nil
		}
	}
	return nil, Errorf("unknown variable '%s'", name)
}

// Set binds name to v.  When some frame already binds name the topmost such
// frame is overwritten.  Otherwise the binding is created in the frame
// directly beneath the top of the stack, the frame of the expression which
// called set, so the variable outlives the call.
func (env *LEnv) Set(name string, v *LVal) error {
	for i := len(env.Scopes) - 1; i >= 0; i-- {
		if _, ok := env.Scopes[i][name]; ok {
			env.Scopes[i][name] = v
			return nil
		}
	}
	if len(env.Scopes) < 2 {
		return Errorf("cannot set '%s': no scope above the current one", name)
	}
	env.Scopes[len(env.Scopes)-2][name] = v
	return nil
}

// PutGlobal binds name to v in the bottom frame.
func (env *LEnv) PutGlobal(name string, v *LVal) error {
	if len(env.Scopes) == 0 {
		return Errorf("cannot set '%s': no global scope", name)
	}
	env.Scopes[0][name] = v
	return nil
}

func (env *LEnv) checkHeight() error {
	if env.MaxHeight > 0 && len(env.Scopes) >= env.MaxHeight {
		return Errorf("stack overflow: maximum height %d exceeded", env.MaxHeight)
	}
	return nil
}
