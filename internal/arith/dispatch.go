package arith

import (
	"reflect"

	langext "github.com/plouh/language-ext"
)

// Op names one of the four dispatched operations.
type Op string

const (
	OpAppend   Op = "append"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Append combines two optional operands. An absent operand is the
// identity: with both sides absent the result is absent, with exactly one
// side absent the present side is returned unchanged. With both sides
// present the strategy is resolved from T: numeric values sum, strings and
// slices concatenate, maps merge with the right side winning on key
// collisions, and types exposing a combine capability combine themselves.
// A type matching no category panics with langext.UndefinedOperationError.
func Append[T any](lv T, lok bool, rv T, rok bool) (T, bool) {
	switch {
	case !lok && !rok:
		var zero T
		return zero, false
	case !lok:
		return rv, true
	case !rok:
		return lv, true
	}
	if v, ok := structural(OpAppend, any(lv), any(rv)); ok {
		return v.(T), true
	}
	if c, ok := any(lv).(langext.Addable[T]); ok {
		return c.Append(rv), true
	}
	if v, ok := methodCall(OpAppend, any(lv), any(rv)); ok {
		return v.(T), true
	}
	panic(langext.UndefinedOperationError{Op: string(OpAppend), TypeName: typeNameFor(lv)})
}

// Subtract removes the right operand from the left. An absent left side is
// first lifted to the type's additive identity, if it has one; a left side
// that stays absent is returned unchanged, as is the left side when the
// right side is absent. With both sides present: numeric values take the
// difference, slices drop the right side's elements, maps drop the right
// side's keys, capability types subtract themselves. Text has a zero but
// no structural subtract, so it falls through to capability dispatch.
func Subtract[T any](lv T, lok bool, rv T, rok bool) (T, bool) {
	if !lok {
		if t := reflect.TypeOf(any(lv)); t != nil {
			if z, ok := Zero(t); ok {
				lv, lok = z.(T), true
			}
		}
	}
	if !lok {
		var zero T
		return zero, false
	}
	if !rok {
		return lv, true
	}
	if v, ok := structural(OpSubtract, any(lv), any(rv)); ok {
		return v.(T), true
	}
	if c, ok := any(lv).(langext.Subtractable[T]); ok {
		return c.Subtract(rv), true
	}
	if v, ok := methodCall(OpSubtract, any(lv), any(rv)); ok {
		return v.(T), true
	}
	panic(langext.UndefinedOperationError{Op: string(OpSubtract), TypeName: typeNameFor(lv)})
}

// Multiply multiplies two optional operands. Unlike append and subtract,
// an absent operand absorbs: either side absent makes the result absent.
// With both sides present: numeric values multiply, slices produce the
// cross-combination of all element pairs (each pair multiplied under the
// element type's own category), capability types multiply themselves.
func Multiply[T any](lv T, lok bool, rv T, rok bool) (T, bool) {
	if !lok || !rok {
		var zero T
		return zero, false
	}
	if v, ok := structural(OpMultiply, any(lv), any(rv)); ok {
		return v.(T), true
	}
	if c, ok := any(lv).(langext.Multiplicable[T]); ok {
		return c.Multiply(rv), true
	}
	if v, ok := methodCall(OpMultiply, any(lv), any(rv)); ok {
		return v.(T), true
	}
	panic(langext.UndefinedOperationError{Op: string(OpMultiply), TypeName: typeNameFor(lv)})
}

// Divide divides the left operand by the right, with the same absorbing
// absent policy as Multiply. Division by a numeric zero follows Go
// semantics for the kind: integer kinds panic, float kinds produce Inf or
// NaN.
func Divide[T any](lv T, lok bool, rv T, rok bool) (T, bool) {
	if !lok || !rok {
		var zero T
		return zero, false
	}
	if v, ok := structural(OpDivide, any(lv), any(rv)); ok {
		return v.(T), true
	}
	if c, ok := any(lv).(langext.Divisible[T]); ok {
		return c.Divide(rv), true
	}
	if v, ok := methodCall(OpDivide, any(lv), any(rv)); ok {
		return v.(T), true
	}
	panic(langext.UndefinedOperationError{Op: string(OpDivide), TypeName: typeNameFor(lv)})
}

// structural applies op to two present values under the structural
// categories. It reports false when no structural strategy applies, which
// sends the operation on to capability dispatch. Operands of differing
// dynamic types never match structurally.
func structural(op Op, a, b any) (any, bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return nil, false
	}
	cat := ResolveCategory(ra.Type())
	if cat == NoCategory {
		return nil, false
	}
	tracer().Debugf("dispatching %s on %s operands (category %s)", op, ra.Type(), cat)
	switch cat {
	case Numeric:
		return numeric(op, ra, rb), true
	case Text:
		if op != OpAppend {
			return nil, false
		}
		r := reflect.New(ra.Type()).Elem()
		r.SetString(ra.String() + rb.String())
		return r.Interface(), true
	case Sequence:
		return sequence(op, ra, rb)
	case SetMap:
		return setmap(op, ra, rb)
	}
	return nil, false
}

func numeric(op Op, a, b reflect.Value) any {
	t := a.Type()
	r := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r.SetInt(intOp(op, a.Int(), b.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		r.SetUint(uintOp(op, a.Uint(), b.Uint()))
	case reflect.Float32, reflect.Float64:
		r.SetFloat(floatOp(op, a.Float(), b.Float()))
	case reflect.Complex64, reflect.Complex128:
		r.SetComplex(complexOp(op, a.Complex(), b.Complex()))
	}
	return r.Interface()
}

func intOp(op Op, x, y int64) int64 {
	switch op {
	case OpAppend:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	}
	return 0
}

func uintOp(op Op, x, y uint64) uint64 {
	switch op {
	case OpAppend:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	}
	return 0
}

func floatOp(op Op, x, y float64) float64 {
	switch op {
	case OpAppend:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	}
	return 0
}

func complexOp(op Op, x, y complex128) complex128 {
	switch op {
	case OpAppend:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	}
	return 0
}

func sequence(op Op, a, b reflect.Value) (any, bool) {
	switch op {
	case OpAppend:
		return reflect.AppendSlice(a, b).Interface(), true
	case OpSubtract:
		out := reflect.MakeSlice(a.Type(), 0, a.Len())
		for i := 0; i < a.Len(); i++ {
			el := a.Index(i)
			if !containsElement(b, el) {
				out = reflect.Append(out, el)
			}
		}
		return out.Interface(), true
	case OpMultiply, OpDivide:
		return cross(op, a, b), true
	}
	return nil, false
}

func containsElement(s, el reflect.Value) bool {
	for i := 0; i < s.Len(); i++ {
		if reflect.DeepEqual(s.Index(i).Interface(), el.Interface()) {
			return true
		}
	}
	return false
}

// cross produces the cross-combination of all element pairs of two slices,
// combining each pair with op under the element type's own dispatch.
func cross(op Op, a, b reflect.Value) any {
	out := reflect.MakeSlice(a.Type(), 0, a.Len()*b.Len())
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			x, y := a.Index(i).Interface(), b.Index(j).Interface()
			v, ok := structural(op, x, y)
			if !ok {
				v, ok = methodCall(op, x, y)
			}
			if !ok {
				panic(langext.UndefinedOperationError{Op: string(op), TypeName: a.Type().Elem().String()})
			}
			out = reflect.Append(out, reflect.ValueOf(v))
		}
	}
	return out.Interface()
}

func setmap(op Op, a, b reflect.Value) (any, bool) {
	switch op {
	case OpAppend:
		out := reflect.MakeMapWithSize(a.Type(), a.Len()+b.Len())
		for it := a.MapRange(); it.Next(); {
			out.SetMapIndex(it.Key(), it.Value())
		}
		for it := b.MapRange(); it.Next(); { // right side wins on key collisions
			out.SetMapIndex(it.Key(), it.Value())
		}
		return out.Interface(), true
	case OpSubtract:
		out := reflect.MakeMapWithSize(a.Type(), a.Len())
		for it := a.MapRange(); it.Next(); {
			if !b.MapIndex(it.Key()).IsValid() {
				out.SetMapIndex(it.Key(), it.Value())
			}
		}
		return out.Interface(), true
	}
	return nil, false
}

// methodName maps an operation to the capability method it dispatches to.
var methodName = map[Op]string{
	OpAppend:   "Append",
	OpSubtract: "Subtract",
	OpMultiply: "Multiply",
	OpDivide:   "Divide",
}

// methodCall looks up a capability method for op on a's dynamic type with
// signature func(T) T and invokes it. This is the runtime fallback for
// user-defined categories; the option packages additionally assert the
// langext capability interfaces where the type parameter is at hand.
func methodCall(op Op, a, b any) (any, bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return nil, false
	}
	m := ra.MethodByName(methodName[op])
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.In(0) != ra.Type() || mt.Out(0) != ra.Type() {
		return nil, false
	}
	tracer().Debugf("dispatching %s to capability method on %s", op, ra.Type())
	return m.Call([]reflect.Value{rb})[0].Interface(), true
}

// typeNameFor names the contained type for error reporting, preferring the
// dynamic type of the operand over the static type parameter.
func typeNameFor[T any](v T) string {
	if t := reflect.TypeOf(any(v)); t != nil {
		return t.String()
	}
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
