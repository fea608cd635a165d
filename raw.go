package jval

import (
	eng "github.com/reoring/jval/internal/engine"
)

// FromRaw converts a raw tree, as produced by a generic JSON decoder, into
// a Value. The accepted shapes are:
//
//   - []any -> Array (recursively)
//   - map[string]any -> Object (recursively)
//   - nil -> Null
//   - json.Number (go-json aliases the same type) -> Number
//   - string -> String
//   - bool -> Boolean
//   - every integer width and float32/float64 -> Number (widened to float64)
//
// Elements of any other type are dropped: arrays omit them and objects
// omit the key. A root of an unsupported type yields the absent Value.
func FromRaw(raw any) Value {
	v, _ := classify(raw)
	return v
}

// classify reports false for inputs outside the accepted shapes.
func classify(raw any) (Value, bool) {
	switch x := raw.(type) {
	case []any:
		out := make([]Value, 0, len(x))
		for _, e := range x {
			if v, ok := classify(e); ok {
				out = append(out, v)
			}
		}
		return Value{kind: KindArray, arr: out}, true
	case map[string]any:
		out := make(map[string]Value, len(x))
		for k, e := range x {
			if v, ok := classify(e); ok {
				out[k] = v
			}
		}
		return Value{kind: KindObject, obj: out}, true
	case nil:
		return Null(), true
	case string:
		return String(x), true
	case bool:
		return Bool(x), true
	}
	if f, ok := eng.Float64Of(raw); ok {
		return Number(f), true
	}
	return Value{}, false
}

// ArrayOf builds an Array from loosely typed elements. A Value element is
// used as is, a *Value is dereferenced, and anything else is classified
// like a raw tree element, so a Go nil becomes Null. The same rules apply
// inside nested []any and map[string]any literals. An absent Value, a nil
// *Value and an element of an unsupported type are all elided.
func ArrayOf(elems ...any) Value {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		if v, ok := literal(e); ok {
			out = append(out, v)
		}
	}
	return Value{kind: KindArray, arr: out}
}

// ObjectOf builds an Object from loosely typed members with the element
// rules of ArrayOf. Elided members leave no key behind.
func ObjectOf(members map[string]any) Value {
	out := make(map[string]Value, len(members))
	for k, m := range members {
		if v, ok := literal(m); ok {
			out[k] = v
		}
	}
	return Value{kind: KindObject, obj: out}
}

func literal(e any) (Value, bool) {
	switch x := e.(type) {
	case Value:
		return x, x.kind != KindAbsent
	case *Value:
		if x == nil || x.kind == KindAbsent {
			return Value{}, false
		}
		return *x, true
	case []Value:
		return Array(x...), true
	case map[string]Value:
		return Object(x), true
	case []any:
		return ArrayOf(x...), true
	case map[string]any:
		return ObjectOf(x), true
	}
	return classify(e)
}

// Raw converts v back into a raw tree suitable for a generic encoder:
// []any, map[string]any, bool, float64, string, or nil for Null. The absent
// Value also maps to nil.
func (v Value) Raw() any {
	switch v.kind {
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Raw()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, m := range v.obj {
			out[k] = m.Raw()
		}
		return out
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	default:
		return nil
	}
}
