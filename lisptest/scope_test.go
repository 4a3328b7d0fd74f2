package lisptest

import (
	"testing"

	"github.com/bmatsuo/tlisp/lisp"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"set", TestSequence{
			{"(set 'x 5)", "[nil]", ""},
			{"x", "5", ""},
			{"(set 'x (add x 1))", "[nil]", ""},
			{"x", "6", ""},
			{"($ 'y 1)", "[nil]", ""},
			{"y", "1", ""},
			{"(set x 1)", "set: first argument is not a symbol: integer", ""},
			{"z", "unknown variable 'z'", ""},
		}},
		{"global", TestSequence{
			{"(global 'g 1)", "[nil]", ""},
			{"g", "1", ""},
			{"(global 1 1)", "global: first argument is not a symbol: integer", ""},
		}},
		{"bindings made inside an expression", TestSequence{
			// set binds in the scope of the enclosing expression, which
			// ends with it.
			{"(seq (set 'a 1) (set 'b 2) (add a b))", "3", ""},
			{"a", "unknown variable 'a'", ""},
			{"(defun setter () (set 'local 1))", "[nil]", ""},
			{"(setter)", "[nil]", ""},
			{"local", "unknown variable 'local'", ""},
			{"(defun setter2 () (seq (set 'local 1) local))", "[nil]", ""},
			{"(setter2)", "1", ""},
			{"local", "unknown variable 'local'", ""},
		}},
		{"global from a function", TestSequence{
			{"(defun gsetter () (global 'gv 9))", "[nil]", ""},
			{"(gsetter)", "[nil]", ""},
			{"gv", "9", ""},
		}},
		{"existing bindings are overwritten", TestSequence{
			{"(set 'counter 0)", "[nil]", ""},
			{"(defun bump () (set 'counter (add counter 1)))", "[nil]", ""},
			{"(bump)", "[nil]", ""},
			{"(bump)", "[nil]", ""},
			{"counter", "2", ""},
		}},
		{"parameters shadow globals", TestSequence{
			{"(set 'x 1)", "[nil]", ""},
			{"(defun fx (x) (seq (set 'x 5) x))", "[nil]", ""},
			{"(fx 2)", "5", ""},
			{"x", "1", ""},
		}},
		{"callers are visible", TestSequence{
			{"(defun show () y)", "[nil]", ""},
			{"(defun with_y (y) (show))", "[nil]", ""},
			{"(with_y 7)", "7", ""},
			{"(show)", "unknown variable 'y'", ""},
		}},
		{"curried closures", TestSequence{
			{"(defun adder (n x) (add n x))", "[nil]", ""},
			{"(set 'add5 (adder 5))", "[nil]", ""},
			{"(add5 1)", "6", ""},
			{"(map add5 '(1 2))", "{6, 7}", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestMaximumStackHeight(t *testing.T) {
	tests := TestSuite{
		{"recursion", TestSequence{
			{"(defun forever (n) (forever n))", "[nil]", ""},
			{"(forever 1)", "stack overflow: maximum height 200 exceeded", ""},
			{"(defun depth (n) (cond ((eq n 0) 0) (true (add 1 (depth (sub n 1))))))", "[nil]", ""},
			{"(depth 10)", "10", ""},
		}},
	}
	r := &Runner{NoLibrary: true}
	r.Config = append(r.Config, lisp.WithMaximumStackHeight(200))
	r.RunTestSuite(t, tests)
}
