package arith

import (
	"reflect"
	"testing"
)

type ratio struct{ num, den int }

type label string

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected Category
	}{
		{"int", 5, Numeric},
		{"uint8", uint8(5), Numeric},
		{"float", 2.5, Numeric},
		{"complex", complex(1, 2), Numeric},
		{"string", "abc", Text},
		{"named string", label("x"), Text},
		{"int slice", []int{1}, Sequence},
		{"string slice", []string{"a"}, Sequence},
		{"map", map[string]int{"a": 1}, SetMap},
		{"struct", ratio{1, 2}, NoCategory},
		{"bool", true, NoCategory},
		{"pointer", &ratio{1, 2}, NoCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := ResolveCategory(reflect.TypeOf(tt.value))
			if cat != tt.expected {
				t.Errorf("expected category of %T to be %s, is %s", tt.value, tt.expected, cat)
			}
		})
	}
	if cat := ResolveCategory(nil); cat != NoCategory {
		t.Errorf("expected nil type to have no category, has %s", cat)
	}
}

// TestCategoryPriority pins the resolution order: a string is text, never
// a sequence of bytes; a byte slice is a sequence, never text.
func TestCategoryPriority(t *testing.T) {
	if cat := ResolveCategory(reflect.TypeOf("abc")); cat != Text {
		t.Errorf("expected string to resolve as text, is %s", cat)
	}
	if cat := ResolveCategory(reflect.TypeOf([]byte("abc"))); cat != Sequence {
		t.Errorf("expected []byte to resolve as sequence, is %s", cat)
	}
}

func TestZero(t *testing.T) {
	z, ok := Zero(reflect.TypeOf(7))
	if !ok || z != 0 {
		t.Errorf("expected zero of int to be 0, is %v (ok=%v)", z, ok)
	}
	z, ok = Zero(reflect.TypeOf("x"))
	if !ok || z != "" {
		t.Errorf("expected zero of string to be the empty string, is %v (ok=%v)", z, ok)
	}
	z, ok = Zero(reflect.TypeOf([]int{1}))
	if !ok || reflect.ValueOf(z).Len() != 0 {
		t.Errorf("expected zero of []int to be the empty slice, is %v (ok=%v)", z, ok)
	}
	z, ok = Zero(reflect.TypeOf(map[string]int{}))
	if !ok || reflect.ValueOf(z).Len() != 0 {
		t.Errorf("expected zero of map to be the empty map, is %v (ok=%v)", z, ok)
	}
	if _, ok = Zero(reflect.TypeOf(ratio{})); ok {
		t.Error("expected struct type to have no zero")
	}
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var f func()
	var i any = p // non-nil interface holding a nil pointer
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", p, true},
		{"nil map", m, true},
		{"nil func", f, true},
		{"interface holding nil pointer", i, true},
		{"int", 0, false},
		{"empty string", "", false},
		{"empty struct", struct{}{}, false},
		{"non-nil pointer", new(int), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsNil(tt.value) != tt.expected {
				t.Errorf("IsNil(%v) = %v; want %v", tt.value, !tt.expected, tt.expected)
			}
		})
	}
}
