package jval

import (
	"maps"
	"math"
	"slices"
)

// ---- typed readers ----
//
// Readers are variant exact. A mismatch reports false, never an error.

// AsArray returns the raw form of an Array.
func (v Value) AsArray() ([]any, bool) {
	a, ok := v.Raw().([]any)
	return a, ok
}

// AsObject returns the raw form of an Object.
func (v Value) AsObject() (map[string]any, bool) {
	m, ok := v.Raw().(map[string]any)
	return m, ok
}

// AsBool returns the payload of a Boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsFloat64 returns the payload of a Number.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// AsInt truncates a Number toward zero. NaN, infinities and numbers outside
// the int range report false.
func (v Value) AsInt() (int, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return truncate(v.n)
}

// AsString returns the payload of a String.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func truncate(f float64) (int, bool) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt || t >= math.MaxInt {
		return 0, false
	}
	return int(t), true
}

// ---- keyed access ----

// Get returns the member key of an Object. Any other receiver, including
// the absent Value, yields absent, so lookups chain safely:
//
//	v.Get("a").Get("b").Index(0)
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Value{}
	}
	return v.obj[key]
}

// GetBool is shorthand for v.Get(key).AsBool().
func (v Value) GetBool(key string) (bool, bool) { return v.Get(key).AsBool() }

// GetFloat64 is shorthand for v.Get(key).AsFloat64().
func (v Value) GetFloat64(key string) (float64, bool) { return v.Get(key).AsFloat64() }

// GetInt is shorthand for v.Get(key).AsInt().
func (v Value) GetInt(key string) (int, bool) { return v.Get(key).AsInt() }

// GetString is shorthand for v.Get(key).AsString().
func (v Value) GetString(key string) (string, bool) { return v.Get(key).AsString() }

// GetArray is shorthand for v.Get(key).AsArray().
func (v Value) GetArray(key string) ([]any, bool) { return v.Get(key).AsArray() }

// GetObject is shorthand for v.Get(key).AsObject().
func (v Value) GetObject(key string) (map[string]any, bool) { return v.Get(key).AsObject() }

// With returns a copy of v with member key set to x. An absent x removes
// the key and Null stores an explicit null. A receiver that is not an
// Object is returned unchanged.
func (v Value) With(key string, x Value) Value {
	if v.kind != KindObject {
		return v
	}
	obj := maps.Clone(v.obj)
	if obj == nil {
		obj = map[string]Value{}
	}
	if x.kind == KindAbsent {
		delete(obj, key)
	} else {
		obj[key] = x
	}
	return Value{kind: KindObject, obj: obj}
}

// Set replaces *v with v.With(key, x). Other copies of the old value are
// not affected.
func (v *Value) Set(key string, x Value) { *v = v.With(key, x) }

// ---- indexed access ----

// Index returns element i of an Array, or absent when the receiver is not
// an Array or i is outside [0, Len()).
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// WithIndex returns a copy of v with element i replaced by x; an absent x
// stores Null since arrays have no holes. A receiver that is not an Array
// is returned unchanged. WithIndex panics with *IndexError when i is out
// of range.
func (v Value) WithIndex(i int, x Value) Value {
	if v.kind != KindArray {
		return v
	}
	if i < 0 || i >= len(v.arr) {
		panic(&IndexError{Index: i, Len: len(v.arr)})
	}
	if x.kind == KindAbsent {
		x = Null()
	}
	arr := slices.Clone(v.arr)
	arr[i] = x
	return Value{kind: KindArray, arr: arr}
}

// SetIndex replaces *v with v.WithIndex(i, x).
func (v *Value) SetIndex(i int, x Value) { *v = v.WithIndex(i, x) }
