package main

import (
	"fmt"
	"slices"

	"github.com/plouh/language-ext/option"
	"github.com/pterm/pterm"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortValues sorts string options with a locale-aware collator and prints
// them; None sorts before every present value. Values come from the
// remaining REPL fields, with `none` denoting an absent one.
func sortValues(loc string, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("sort: no values given")
	}
	if loc == "" {
		loc = "en"
	}
	tag, err := language.Parse(loc)
	if err != nil {
		return fmt.Errorf("sort: unknown locale %q", loc)
	}
	coll := collate.New(tag)
	opts := make([]option.Option[string], 0, len(fields))
	for _, f := range fields {
		if f == "none" {
			opts = append(opts, option.None[string]())
		} else {
			opts = append(opts, option.Some(f))
		}
	}
	slices.SortFunc(opts, func(a, b option.Option[string]) int {
		return option.CompareFunc(a, b, coll.CompareString)
	})
	for _, o := range opts {
		pterm.Println(o.String())
	}
	return nil
}
