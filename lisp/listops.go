package lisp

import (
	"sort"
)

func listArg(name string, v *LVal) error {
	if v.Type != LList {
		return invalidTypes(name, v)
	}
	return nil
}

func builtinFirst(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("first", args[0]); err != nil {
		return nil, err
	}
	if len(args[0].Cells) == 0 {
		return Nil(), nil
	}
	return args[0].Cells[0], nil
}

func builtinLast(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("last", args[0]); err != nil {
		return nil, err
	}
	if len(args[0].Cells) == 0 {
		return Nil(), nil
	}
	return args[0].Cells[len(args[0].Cells)-1], nil
}

func builtinInit(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("init", args[0]); err != nil {
		return nil, err
	}
	n := len(args[0].Cells)
	if n == 0 {
		return Nil(), nil
	}
	return List(cloneCells(args[0].Cells[:n-1])...), nil
}

func builtinTail(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("tail", args[0]); err != nil {
		return nil, err
	}
	if len(args[0].Cells) == 0 {
		return Nil(), nil
	}
	return List(cloneCells(args[0].Cells[1:])...), nil
}

func builtinLen(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("len", args[0]); err != nil {
		return nil, err
	}
	return Int(int64(len(args[0].Cells))), nil
}

func builtinNth(env *LEnv, args []*LVal) (*LVal, error) {
	idx, list := args[0], args[1]
	if idx.Type != LInt || list.Type != LList {
		return nil, invalidTypes("nth", idx, list)
	}
	if idx.Int < 0 {
		return nil, berrf("nth", "index must be non-negative")
	}
	if idx.Int >= int64(len(list.Cells)) {
		return Nil(), nil
	}
	return list.Cells[idx.Int], nil
}

func builtinCons(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("cons", args[1]); err != nil {
		return nil, err
	}
	cells := make([]*LVal, 0, len(args[1].Cells)+1)
	cells = append(cells, args[0])
	return List(append(cells, args[1].Cells...)...), nil
}

func builtinAppend(env *LEnv, args []*LVal) (*LVal, error) {
	a, b := args[0], args[1]
	if a.Type != LList || b.Type != LList {
		return nil, invalidTypes("append", a, b)
	}
	cells := make([]*LVal, 0, len(a.Cells)+len(b.Cells))
	cells = append(cells, a.Cells...)
	return List(append(cells, b.Cells...)...), nil
}

func builtinRev(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("rev", args[0]); err != nil {
		return nil, err
	}
	n := len(args[0].Cells)
	cells := make([]*LVal, n)
	for i, c := range args[0].Cells {
		cells[n-1-i] = c
	}
	return List(cells...), nil
}

func builtinUnique(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("unique", args[0]); err != nil {
		return nil, err
	}
	var cells []*LVal
	for _, c := range args[0].Cells {
		if indexOf(cells, c) < 0 {
			cells = append(cells, c)
		}
	}
	return List(cells...), nil
}

// builtinSort sorts a list of integers in ascending order, or any list when
// given a comparison function returning true when its first argument
// should come before its second.
func builtinSort(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) > 2 {
		return nil, berrf("sort", "expected at most 2 function parameters, found %d", len(args))
	}
	list := args[0]
	if err := listArg("sort", list); err != nil {
		return nil, err
	}
	cells := cloneCells(list.Cells)
	if len(args) == 1 {
		for _, c := range cells {
			if c.Type != LInt {
				return nil, berrf("sort", "only lists of integers can be sorted without a comparison function, found %v", c.Type)
			}
		}
		sort.SliceStable(cells, func(i, j int) bool { return cells[i].Int < cells[j].Int })
		return List(cells...), nil
	}
	less := args[1]
	if less.Type != LLambda {
		return nil, invalidTypes("sort", list, less)
	}
	var err error
	sort.SliceStable(cells, func(i, j int) bool {
		if err != nil {
			return false
		}
		var ok *LVal
		ok, err = env.Call(less, []*LVal{cells[i], cells[j]})
		if err != nil {
			return false
		}
		if ok.Type != LBool {
			err = berrf("sort", "comparison function returned %v, expected boolean", ok.Type)
			return false
		}
		return ok.Bool
	})
	if err != nil {
		return nil, err
	}
	return List(cells...), nil
}

func builtinContains(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("contains", args[0]); err != nil {
		return nil, err
	}
	return Bool(indexOf(args[0].Cells, args[1]) >= 0), nil
}

func builtinFind(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("find", args[0]); err != nil {
		return nil, err
	}
	i := indexOf(args[0].Cells, args[1])
	if i < 0 {
		return Nil(), nil
	}
	return Int(int64(i)), nil
}

func builtinSplitAt(env *LEnv, args []*LVal) (*LVal, error) {
	idx, list := args[0], args[1]
	if idx.Type != LInt || list.Type != LList {
		return nil, invalidTypes("split_at", idx, list)
	}
	if idx.Int < 0 || idx.Int >= int64(len(list.Cells)) {
		return nil, berrf("split_at", "index %d out of bounds for list of length %d", idx.Int, len(list.Cells))
	}
	left := cloneCells(list.Cells[:idx.Int])
	right := cloneCells(list.Cells[idx.Int:])
	return List(List(left...), List(right...)), nil
}

func builtinCombine(env *LEnv, args []*LVal) (*LVal, error) {
	if err := listArg("combine", args[0]); err != nil {
		return nil, err
	}
	var cells []*LVal
	for _, c := range args[0].Cells {
		if c.Type != LList {
			return nil, berrf("combine", "expected a list of lists, found %v", c.Type)
		}
		cells = append(cells, c.Cells...)
	}
	return List(cells...), nil
}

func builtinIntersect(env *LEnv, args []*LVal) (*LVal, error) {
	a, b := args[0], args[1]
	if a.Type != LList || b.Type != LList {
		return nil, invalidTypes("intersect", a, b)
	}
	var cells []*LVal
	for _, c := range a.Cells {
		if indexOf(b.Cells, c) >= 0 && indexOf(cells, c) < 0 {
			cells = append(cells, c)
		}
	}
	return List(cells...), nil
}

func builtinZip(env *LEnv, args []*LVal) (*LVal, error) {
	a, b := args[0], args[1]
	if a.Type != LList || b.Type != LList {
		return nil, invalidTypes("zip", a, b)
	}
	n := len(a.Cells)
	if len(b.Cells) < n {
		n = len(b.Cells)
	}
	cells := make([]*LVal, n)
	for i := range cells {
		cells[i] = List(a.Cells[i], b.Cells[i])
	}
	return List(cells...), nil
}

func builtinCount(env *LEnv, args []*LVal) (*LVal, error) {
	lo, hi := args[0], args[1]
	if lo.Type != LInt || hi.Type != LInt {
		return nil, invalidTypes("count", lo, hi)
	}
	if lo.Int > hi.Int {
		return nil, berrf("count", "minimum %d is greater than maximum %d", lo.Int, hi.Int)
	}
	n := uint64(hi.Int) - uint64(lo.Int)
	if n > MaxListLength {
		return nil, berrf("count", "range of %d integers exceeds the maximum list length %d", n, MaxListLength)
	}
	cells := make([]*LVal, n)
	for i := range cells {
		cells[i] = Int(lo.Int + int64(i))
	}
	return List(cells...), nil
}

func builtinMap(env *LEnv, args []*LVal) (*LVal, error) {
	fn, list := args[0], args[1]
	if fn.Type != LLambda || list.Type != LList {
		return nil, invalidTypes("map", fn, list)
	}
	cells := make([]*LVal, len(list.Cells))
	for i, c := range list.Cells {
		v, err := env.Call(fn, []*LVal{c})
		if err != nil {
			return nil, addTrace(err, "map")
		}
		cells[i] = v
	}
	return List(cells...), nil
}

func builtinFold(env *LEnv, args []*LVal) (*LVal, error) {
	acc, fn, list := args[0], args[1], args[2]
	if fn.Type != LLambda || list.Type != LList {
		return nil, invalidTypes("fold", acc, fn, list)
	}
	for _, c := range list.Cells {
		v, err := env.Call(fn, []*LVal{acc, c})
		if err != nil {
			return nil, addTrace(err, "fold")
		}
		acc = v
	}
	return acc, nil
}

// builtinExpand is like fold but returns every intermediate accumulator.
func builtinExpand(env *LEnv, args []*LVal) (*LVal, error) {
	acc, fn, list := args[0], args[1], args[2]
	if fn.Type != LLambda || list.Type != LList {
		return nil, invalidTypes("expand", acc, fn, list)
	}
	cells := make([]*LVal, 0, len(list.Cells))
	for _, c := range list.Cells {
		v, err := env.Call(fn, []*LVal{acc, c})
		if err != nil {
			return nil, addTrace(err, "expand")
		}
		acc = v
		cells = append(cells, v)
	}
	return List(cells...), nil
}

// predicate calls fn on each element of list and passes each boolean result
// to visit until visit returns false.
func predicate(env *LEnv, name string, fn, list *LVal, visit func(i int, ok bool) bool) error {
	if fn.Type != LLambda || list.Type != LList {
		return invalidTypes(name, fn, list)
	}
	for i, c := range list.Cells {
		v, err := env.Call(fn, []*LVal{c})
		if err != nil {
			return addTrace(err, name)
		}
		if v.Type != LBool {
			return berrf(name, "expected boolean at index %d", i)
		}
		if !visit(i, v.Bool) {
			return nil
		}
	}
	return nil
}

func builtinFilter(env *LEnv, args []*LVal) (*LVal, error) {
	var cells []*LVal
	err := predicate(env, "filter", args[0], args[1], func(i int, ok bool) bool {
		if ok {
			cells = append(cells, args[1].Cells[i])
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return List(cells...), nil
}

func builtinAny(env *LEnv, args []*LVal) (*LVal, error) {
	found := false
	err := predicate(env, "any", args[0], args[1], func(i int, ok bool) bool {
		found = ok
		return !ok
	})
	if err != nil {
		return nil, err
	}
	return Bool(found), nil
}

// builtinAll returns false for the empty list.
func builtinAll(env *LEnv, args []*LVal) (*LVal, error) {
	all := len(args[1].Cells) > 0
	err := predicate(env, "all", args[0], args[1], func(i int, ok bool) bool {
		all = ok
		return ok
	})
	if err != nil {
		return nil, err
	}
	return Bool(all), nil
}

func indexOf(cells []*LVal, v *LVal) int {
	for i, c := range cells {
		if c.Equal(v) {
			return i
		}
	}
	return -1
}

func cloneCells(cells []*LVal) []*LVal {
	return append([]*LVal(nil), cells...)
}
