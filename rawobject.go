package jval

import (
	"encoding/json"
	"math"
)

// RawObject reads typed members straight out of decoder output without
// converting the whole tree. A nil RawObject behaves like an empty one.
//
// The rules match the Value readers: a boolean never satisfies a numeric
// read and a number never satisfies a boolean read.
type RawObject map[string]any

// Bool returns member key when it is a boolean.
func (o RawObject) Bool(key string) (bool, bool) {
	b, ok := o[key].(bool)
	return b, ok
}

// Float64 returns member key when it is a number of any Go numeric type.
func (o RawObject) Float64(key string) (float64, bool) {
	v, ok := classify(o[key])
	if !ok || v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// Int returns member key truncated toward zero when it is a number. Integer
// members and json.Number integers are read without a float round trip.
func (o RawObject) Int(key string) (int, bool) {
	switch x := o[key].(type) {
	case int:
		return x, true
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x), true
		}
		return 0, false
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), true
		}
	}
	f, ok := o.Float64(key)
	if !ok {
		return 0, false
	}
	return truncate(f)
}

// String returns member key when it is a string.
func (o RawObject) String(key string) (string, bool) {
	s, ok := o[key].(string)
	return s, ok
}

// Value converts member key with FromRaw; a missing key is absent.
func (o RawObject) Value(key string) Value {
	raw, ok := o[key]
	if !ok {
		return Value{}
	}
	return FromRaw(raw)
}
