/*
Package arith implements the shared arithmetic core of the option types.

Both container variants (strict and relaxed) route their append, subtract,
multiply and divide operations through this package. The operations take
the operand values together with presence flags, so the absent-handling
policies live here exactly once:

▪︎ append and subtract treat an absent operand as an identity element,

▪︎ multiply and divide treat an absent operand as an absorbing element.

With both operands present, the combination strategy is resolved from the
contained type's category. Resolution is a fixed priority list — numeric,
then text, then sequence, then set/map, then user capability — and happens
once per operation at the point of use; nothing is cached.
*/
package arith

import (
	"reflect"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'langext.arith'
func tracer() tracing.Trace {
	return tracing.Select("langext.arith")
}

// Category classifies a contained type for arithmetic dispatch.
type Category int8

const (
	NoCategory Category = iota // no strategy applies
	Numeric                    // integer, unsigned, float or complex kinds
	Text                       // string kind
	Sequence                   // slice kind
	SetMap                     // map kind
	Capability                 // type supplies its own operation method
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case NoCategory:
		return "none"
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	case Sequence:
		return "sequence"
	case SetMap:
		return "set/map"
	case Capability:
		return "capability"
	}
	return "unknown"
}

// ResolveCategory classifies t into the structural categories. The order
// is a fixed priority list: a type that could structurally satisfy more
// than one category gets the first match. Capability resolution is not
// structural — it needs the concrete value (or type parameter) — and is
// handled by the operations themselves, ranking after every structural
// category.
func ResolveCategory(t reflect.Type) Category {
	if t == nil {
		return NoCategory
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return Numeric
	case reflect.String:
		return Text
	case reflect.Slice:
		return Sequence
	case reflect.Map:
		return SetMap
	}
	return NoCategory
}

// Zero returns the additive identity for t, if the type has one: 0 for
// numeric kinds, the empty string for text, the empty slice or map for
// sequence and set/map kinds. Types outside these categories have no zero.
func Zero(t reflect.Type) (any, bool) {
	switch ResolveCategory(t) {
	case Numeric, Text:
		return reflect.Zero(t).Interface(), true
	case Sequence:
		return reflect.MakeSlice(t, 0, 0).Interface(), true
	case SetMap:
		return reflect.MakeMap(t).Interface(), true
	}
	return nil, false
}

// IsNil reports whether v holds a nil value. Non-nilable kinds (numbers,
// strings, structs, ...) are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
