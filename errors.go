package langext

import "fmt"

// The errors in this file signal misuse of the option types. They are
// programmer errors: none of them is retried or recovered internally, all
// of them surface as panics at the point of misuse.

// NullValueError reports a nil value handed to a constructor of the strict
// option variant. The forgiving lift (option.Of) maps nil to None instead
// of failing; the explicit constructor does not.
type NullValueError struct {
	Where string // constructor or operation that received the nil value
}

// Error implements the error interface.
func (e NullValueError) Error() string {
	return fmt.Sprintf("%s: value must not be nil", e.Where)
}

// EmptyOptionError reports an attempt to read the inner value of an absent
// option outside of a match-style elimination.
type EmptyOptionError struct {
	Op string // accessor that was called on the empty option
}

// Error implements the error interface.
func (e EmptyOptionError) Error() string {
	return fmt.Sprintf("%s: option is empty", e.Op)
}

// NullResultError reports a match branch of the strict variant returning a
// nil result. The post-check exists so that combinators built on top of
// match cannot quietly reintroduce nil into strict code paths.
type NullResultError struct {
	Branch string // "some" or "none"
}

// Error implements the error interface.
func (e NullResultError) Error() string {
	return fmt.Sprintf("match: %s branch returned a nil result", e.Branch)
}

// UndefinedOperationError reports an arithmetic operation on a contained
// type for which no category applies: the type is not numeric, text,
// sequence or set/map, and exposes no matching capability method.
type UndefinedOperationError struct {
	Op       string // "append", "subtract", "multiply" or "divide"
	TypeName string // name of the contained type
}

// Error implements the error interface.
func (e UndefinedOperationError) Error() string {
	return fmt.Sprintf("no %s strategy for type %s", e.Op, e.TypeName)
}
