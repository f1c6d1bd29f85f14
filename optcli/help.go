package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "expr", "eval", "expression":
		pterm.Info.Println("Expressions")
		pterm.Println(`
	An expression is a chain of operands and operators, e.g.

	    some:5 + some:3          => Some(8)
	    some:2 * none            => None
	    none + some:hello        => Some(hello)
	    some:1,2 + some:3        error: operand types differ
	    some:1,2 * some:10,20    => Some([10 20 20 40])
	    none | some:5 | some:7   => Some(5)

	Operands:
	    none          the absent option
	    some:<lit>    a present option (strict constructor)
	    <lit>         a bare literal, lifted (nil-forgiving path)

	Literals: ints, floats, strings, or comma-separated slices.

	Operators: + - * / resolve a strategy from the operand type
	(numeric, text, sequence, set/map, capability); | keeps the
	first present operand.
	`)
	case "sort":
		pterm.Info.Println("sort[:<locale>] v1 v2 ...")
		pterm.Println(`
	Sorts string options with a locale-aware collator and prints them.
	None sorts before every present value. Use the literal 'none' for
	an absent entry, e.g.

	    sort:da none zebra æble
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<expression>      evaluate an option expression   (help:expr)
	sort[:<locale>]   sort string options             (help:sort)
	quit              leave the playground
	`)
	}
}
