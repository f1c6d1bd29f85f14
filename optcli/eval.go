package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plouh/language-ext/option"
)

// eval folds an expression of the form `operand (operator operand)*` from
// left to right. Operators are +, -, *, / and | (first present wins). A
// dispatch failure — no strategy for the operand type — surfaces as a
// panic inside the option package and is reported here as an ordinary
// error.
func eval(fields []string) (result option.Option[any], err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	if result, err = operand(fields[0]); err != nil {
		return
	}
	for i := 1; i+1 < len(fields); i += 2 {
		var rhs option.Option[any]
		if rhs, err = operand(fields[i+1]); err != nil {
			return
		}
		switch fields[i] {
		case "+":
			result = option.Append(result, rhs)
		case "-":
			result = option.Subtract(result, rhs)
		case "*":
			result = option.Multiply(result, rhs)
		case "/":
			result = option.Divide(result, rhs)
		case "|":
			result = result.Or(rhs)
		default:
			return result, fmt.Errorf("unknown operator: %s", fields[i])
		}
	}
	return
}

// operand parses `none`, `some:<literal>` or a bare literal (lifted,
// i.e. the forgiving path).
func operand(tok string) (option.Option[any], error) {
	if strings.ToLower(tok) == "none" {
		return option.None[any](), nil
	}
	if lit, ok := strings.CutPrefix(tok, "some:"); ok {
		return option.Some[any](parseLit(lit)), nil
	}
	return option.Of[any](parseLit(tok)), nil
}

// parseLit guesses a literal's type: int, float, comma-separated slice of
// ints or of strings, else string.
func parseLit(s string) any {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		ints := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return parts
			}
			ints = append(ints, n)
		}
		return ints
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
