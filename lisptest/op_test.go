package lisptest

import "testing"

func TestSpecialOps(t *testing.T) {
	tests := TestSuite{
		{"lambda", TestSequence{
			{"(set 'incr (lambda (x) (add x 1)))", "[nil]", ""},
			{"(incr 4)", "5", ""},
			// quoted operands are accepted as well.
			{"(set 'add3 (lambda '(a b c) '(add a (add b c))))", "[nil]", ""},
			{"(add3 1 2 3)", "6", ""},
			{"((add3 1) 2 3)", "6", ""},
			{"(((add3 1) 2) 3)", "6", ""},
			{"(add3)", "add3: expected 3 function parameters, found 0", ""},
			{"(add3 1 2 3 4)", "add3: expected 3 function parameters, found 4", ""},
			{"(lambda (x x) x)", "lambda: duplicate parameter 'x'", ""},
			{"(lambda (1) x)", "lambda: parameter list contains a non-symbol: integer", ""},
			{"(lambda x x)", "lambda: parameter list is not a list: symbol", ""},
			{"(lambda (x))", "lambda: expected 2 function parameters, found 1", ""},
			{"((lambda () 5) 1)", "lambda: expected 0 function parameters, found 1", ""},
		}},
		{"defun", TestSequence{
			{"(defun sq (x) (mul x x))", "[nil]", ""},
			{"(sq 5)", "25", ""},
			{"(map sq '(1 2 3))", "{1, 4, 9}", ""},
			{"(defun add (x) x)", "defun: cannot redefine builtin 'add'", ""},
			{"(defun 1 (x) x)", "defun: function name is not a symbol: integer", ""},
			{"(defun countdown (n) (cond ((le n 0) '()) (true (cons n (countdown (sub n 1))))))", "[nil]", ""},
			{"(countdown 3)", "{3, 2, 1}", ""},
			{"(countdown 0)", "{}", ""},
		}},
		{"builtin currying", TestSequence{
			{"(map (add 10) '(1 2 3))", "{11, 12, 13}", ""},
			{"(set 'half (flip div 2))", "[nil]", ""},
			{"(half 5)", "2.5", ""},
			{"(filter (lt 1) '(0 1 2 3))", "{2, 3}", ""},
		}},
		{"cond", TestSequence{
			{"(cond (false 1) (true 2))", "2", ""},
			{"(cond ((eq 1 2) 'a) ((eq 1 1) 'b))", "b", ""},
			// only the chosen result is evaluated.
			{`(cond (false (throw "no")) (true 1))`, "1", ""},
			{`(cond (true 1) ((throw "no") 2))`, "1", ""},
			{"(cond (false 1))", "cond: no condition was true", ""},
			{"(cond (1 2))", "cond: expected boolean at index 0", ""},
			{"(cond (true))", "cond: clause 0 is not a (condition result) pair", ""},
			{"(cond)", "cond: expected at least 1 function parameter, found 0", ""},
		}},
		{"while", TestSequence{
			{"(set 'i 0)", "[nil]", ""},
			{"(while (lt i 5) (set 'i (add i 1)))", "[nil]", ""},
			{"i", "5", ""},
			{"(while false 1)", "[nil]", ""},
			{"(while 1 1)", "while: condition evaluated to integer, expected boolean", ""},
			{"(set 's 0)", "[nil]", ""},
			{"(set 'i 0)", "[nil]", ""},
			{"(while (lt i 4) (seq (set 's (add s i)) (set 'i (add i 1)) s))", "6", ""},
			{"(while '(lt i 8) '(set 'i (add i 1)))", "[nil]", ""},
			{"i", "8", ""},
		}},
		{"seq", TestSequence{
			{"(seq 1 2 3)", "3", ""},
			{"(seq (print 1) (print 2))", "[nil]", "1\n2\n"},
			{"(seq)", "seq: expected 1 function parameters, found 0", ""},
		}},
	}
	RunTestSuite(t, tests)
}
