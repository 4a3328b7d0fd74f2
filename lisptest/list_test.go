package lisptest

import "testing"

func TestLists(t *testing.T) {
	tests := TestSuite{
		{"access", TestSequence{
			{"(first '(1 2 3))", "1", ""},
			{"(last '(1 2 3))", "3", ""},
			{"(init '(1 2 3))", "{1, 2}", ""},
			{"(tail '(1 2 3))", "{2, 3}", ""},
			{"(first '())", "[nil]", ""},
			{"(last '())", "[nil]", ""},
			{"(tail '())", "[nil]", ""},
			{"(tail '(1))", "{}", ""},
			{"(len '(1 2 3))", "3", ""},
			{"(len nil)", "0", ""},
			{"(nth 1 '(a b c))", "b", ""},
			{"(nth 5 '(a b c))", "[nil]", ""},
			{"(nth -1 '(a))", "nth: index must be non-negative", ""},
			{"(first 1)", "first: invalid types: integer", ""},
		}},
		{"construction", TestSequence{
			{"(cons 0 '(1 2))", "{0, 1, 2}", ""},
			{"(cons '(0) '())", "{{0}}", ""},
			{"(append '(1) '(2 3))", "{1, 2, 3}", ""},
			{"(append '() '())", "{}", ""},
			{"(rev '(1 2 3))", "{3, 2, 1}", ""},
			{"(unique '(1 2 1 3 2))", "{1, 2, 3}", ""},
			{"(combine '((1 2) (3) ()))", "{1, 2, 3}", ""},
			{"(combine '((1) 2))", "combine: expected a list of lists, found integer", ""},
			{"(intersect '(1 2 3 2) '(2 3 4))", "{2, 3}", ""},
			{"(zip '(1 2 3) '(a b))", "{{1, a}, {2, b}}", ""},
			{"(count 0 4)", "{0, 1, 2, 3}", ""},
			{"(.. 2 2)", "{}", ""},
			{"(count 3 1)", "count: minimum 3 is greater than maximum 1", ""},
			{"(count 0 16777217)", "count: range of 16777217 integers exceeds the maximum list length 16777216", ""},
			{"(count -9223372036854775808 9223372036854775807)", "count: range of 18446744073709551615 integers exceeds the maximum list length 16777216", ""},
			{"(len (count 9223372036854775805 9223372036854775807))", "2", ""},
		}},
		{"list values are not shared", TestSequence{
			{"(set 'xs '(1 2 3))", "[nil]", ""},
			{"(rev xs)", "{3, 2, 1}", ""},
			{"(cons 0 xs)", "{0, 1, 2, 3}", ""},
			{"xs", "{1, 2, 3}", ""},
		}},
		{"search", TestSequence{
			{"(contains '(1 2 3) 2)", "true", ""},
			{"(contains '(1 2 3) 4)", "false", ""},
			{"(contains '((1) (2)) '(2))", "true", ""},
			{"(find '(a b c) 'c)", "2", ""},
			{"(find '(a b c) 'd)", "[nil]", ""},
			{"(split_at 1 '(1 2 3))", "{{1}, {2, 3}}", ""},
			{"(split_at 0 '(1 2))", "{{}, {1, 2}}", ""},
			{"(split_at 3 '(1 2 3))", "split_at: index 3 out of bounds for list of length 3", ""},
		}},
		{"sort", TestSequence{
			{"(sort '(3 1 2))", "{1, 2, 3}", ""},
			{"(sort '())", "{}", ""},
			{"(sort '(1.5 2))", "sort: only lists of integers can be sorted without a comparison function, found float", ""},
			{"(sort '(1.5 0.5 1.0) lt)", "{0.5, 1.0, 1.5}", ""},
			{"(sort '(1 2 3) gt)", "{3, 2, 1}", ""},
			{`(sort "cab" lt)`, "{a, b, c}", ""},
			{"(sort '(1 2) (|a b| 1))", "sort: comparison function returned integer, expected boolean", ""},
			{"(sort '(1 2) lt gt)", "sort: expected at most 2 function parameters, found 3", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestHigherOrder(t *testing.T) {
	tests := TestSuite{
		{"map", TestSequence{
			{"(map (|x| mul x x) '(1 2 3))", "{1, 4, 9}", ""},
			{"(% (|x| add x 1) '(1))", "{2}", ""},
			{"(map (|x| 1) '())", "{}", ""},
			{"(map 1 '())", "map: invalid types: integer, list", ""},
			{"(map (|x| add x 'a) '(1))", "add: invalid types: integer, symbol", ""},
		}},
		{"fold", TestSequence{
			{"(fold 0 add '(1 2 3))", "6", ""},
			{`(\ 0 + '(1 2 3))`, "6", ""},
			{"(fold 0 add '())", "0", ""},
			{"(fold '() (flip cons) '(1 2 3))", "{3, 2, 1}", ""},
			{"(fold 0 + (map (|x| 1) '(a b c)))", "3", ""},
			{"(expand 0 add '(1 2 3))", "{1, 3, 6}", ""},
			{"(expand 0 add '())", "{}", ""},
		}},
		{"predicates", TestSequence{
			{"(filter (|x| gt x 1) '(1 2 3))", "{2, 3}", ""},
			{"(_ (|x| gt x 1) '(1 2 3))", "{2, 3}", ""},
			{"(filter (|x| x) '(true 1))", "filter: expected boolean at index 1", ""},
			{"(any (|x| eq x 2) '(1 2 3))", "true", ""},
			{"(any (|x| gt x 0) '())", "false", ""},
			{"(all (|x| gt x 0) '(1 2 3))", "true", ""},
			{"(all (|x| gt x 1) '(1 2 3))", "false", ""},
			{"(all (|x| gt x 0) '())", "false", ""},
		}},
	}
	RunTestSuite(t, tests)
}
