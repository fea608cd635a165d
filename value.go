package jval

import (
	"maps"
	"slices"
)

// Kind enumerates the variants of Value.
type Kind int

const (
	// KindAbsent marks the zero Value: a lookup that found nothing. It is
	// not a variant and never appears inside a tree.
	KindAbsent Kind = iota
	KindArray
	KindObject
	KindBool
	KindNumber
	KindString
	KindNull
)

// String returns the lowercase variant name, or "absent".
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	default:
		return "absent"
	}
}

// Value is an immutable JSON value. The zero Value is absent ("no value"),
// which is distinct from an explicit Null. Values are safe to copy and to
// share between goroutines: every write produces a new Value and never
// touches the containers of the receiver.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Array returns an Array of elems. Absent elements are elided.
func Array(elems ...Value) Value {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		if e.kind == KindAbsent {
			continue
		}
		out = append(out, e)
	}
	return Value{kind: KindArray, arr: out}
}

// Object returns an Object of members. Absent members are dropped.
func Object(members map[string]Value) Value {
	out := make(map[string]Value, len(members))
	for k, m := range members {
		if m.kind == KindAbsent {
			continue
		}
		out[k] = m
	}
	return Value{kind: KindObject, obj: out}
}

// Bool returns a Boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a Number holding f.
func Number(f float64) Value { return Value{kind: KindNumber, n: f} }

// Int returns a Number holding i converted to float64.
func Int(i int) Value { return Value{kind: KindNumber, n: float64(i)} }

// String returns a String holding s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Kind reports the variant of v, or KindAbsent.
func (v Value) Kind() Kind { return v.kind }

// Exists reports whether v is present (any variant, including Null).
func (v Value) Exists() bool { return v.kind != KindAbsent }

// IsArray reports whether v is an Array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsObject reports whether v is an Object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// Len returns the number of elements of an Array or members of an Object,
// and 0 for every other Value.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns the member names of an Object in sorted order, nil otherwise.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Has reports whether v is an Object with member key. It distinguishes a
// member holding Null from a missing member.
func (v Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.obj[key]
	return ok
}

// Elements returns a copy of the elements of an Array.
func (v Value) Elements() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// Members returns a copy of the members of an Object.
func (v Value) Members() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return maps.Clone(v.obj), true
}

// String renders v as compact JSON with sorted object keys. The absent
// Value renders as "<absent>".
func (v Value) String() string {
	if v.kind == KindAbsent {
		return "<absent>"
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(b)
}
