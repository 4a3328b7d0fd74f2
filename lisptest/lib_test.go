package lisptest

import "testing"

func TestLibrary(t *testing.T) {
	tests := TestSuite{
		{"core", TestSequence{
			{"(id 'x)", "x", ""},
			{"(inc 1)", "2", ""},
			{"(dec 1)", "0", ""},
			{"(neg 4)", "-4", ""},
			{"(abs -3)", "3", ""},
			{"(abs 3.5)", "3.5", ""},
			{"(max 3 7)", "7", ""},
			{"(min 3 7)", "3", ""},
			{"((compose inc inc) 1)", "3", ""},
			{"(map (compose inc abs) '(-1 2))", "{2, 3}", ""},
			{"(flip sub 1 10)", "9", ""},
			{"(map (const 0) '(a b))", "{0, 0}", ""},
		}},
		{"type predicates", TestSequence{
			{"(is_int 1)", "true", ""},
			{"(is_int 1.0)", "false", ""},
			{"(is_number 1.0)", "true", ""},
			{"(is_char ´a´)", "true", ""},
			{"(is_bool false)", "true", ""},
			{"(is_symbol 'a)", "true", ""},
			{"(is_list '())", "true", ""},
			{`(is_list "abc")`, "true", ""},
			{"(is_lambda inc)", "true", ""},
			{"(is_lambda add)", "true", ""},
		}},
		{"math", TestSequence{
			{"pi", "3.141592653589793", ""},
			{"(square 3)", "9", ""},
			{"(cube 2)", "8", ""},
			{"(even 4)", "true", ""},
			{"(odd 4)", "false", ""},
			{"(pow 2 10)", "1024", ""},
			{"(fact 5)", "120", ""},
			{"(fib 10)", "55", ""},
			{"(gcd 12 18)", "6", ""},
			{"(lcm 4 6)", "12", ""},
			{"(sum '(1 2 3))", "6", ""},
			{"(product '(1 2 3 4))", "24", ""},
			{"(mean '(1 2 3))", "2.0", ""},
		}},
		{"lists", TestSequence{
			{"(second '(1 2))", "2", ""},
			{"(empty '())", "true", ""},
			{"(empty '(1))", "false", ""},
			{"(take 2 '(1 2 3))", "{1, 2}", ""},
			{"(take 5 '(1))", "{1}", ""},
			{"(drop 1 '(1 2 3))", "{2, 3}", ""},
			{"(drop 5 '(1 2 3))", "{}", ""},
			{"(repeat 3 'x)", "{x, x, x}", ""},
			{"(count_if even '(1 2 4))", "2", ""},
			{"(index_of 'b '(a b))", "1", ""},
			{"(enumerate '(a b))", "{{0, a}, {1, b}}", ""},
			{"(reduce add '(1 2 3))", "6", ""},
		}},
		{"strings", TestSequence{
			{`(puts (upper "abc"))`, "[nil]", "ABC"},
			{`(puts (lower "ABC"))`, "[nil]", "abc"},
			{`(puts (concat "ab" "cd"))`, "[nil]", "abcd"},
			{`(is_digits "123")`, "true", ""},
			{`(is_digits "12a")`, "false", ""},
			{"(digit_value ´7´)", "7", ""},
			{`(parse_int "123")`, "123", ""},
			{`(puts (trim "  hi  "))`, "[nil]", "hi"},
			{`(puts (trim_left "  hi  "))`, "[nil]", "hi  "},
			{`(puts (join ", " (map (|c| cons c '()) "abc")))`, "[nil]", "a, b, c"},
			{`(puts (join "-" (split_at 1 "ab")))`, "[nil]", "a-b"},
		}},
	}
	RunTestSuite(t, tests)
}
