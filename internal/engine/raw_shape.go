package engine

import "encoding/json"

// RawShape exposes a raw decoder tree ([]any, map[string]any, bool, float64,
// json.Number, string, nil) as a Shape. Go integer types are numbers too.
func RawShape(v any) Shape { return rawShape{v} }

type rawShape struct{ v any }

func (r rawShape) Null() bool { return r.v == nil }

func (r rawShape) Bool() (bool, bool) {
	b, ok := r.v.(bool)
	return b, ok
}

func (r rawShape) Number() (float64, bool) { return Float64Of(r.v) }

// Float64Of widens any Go numeric primitive, or a json.Number, to float64.
// Booleans and every other type report false.
func Float64Of(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	}
	return 0, false
}

func (r rawShape) String() (string, bool) {
	s, ok := r.v.(string)
	return s, ok
}

func (r rawShape) Array() ([]Shape, bool) {
	a, ok := r.v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Shape, len(a))
	for i, e := range a {
		out[i] = rawShape{e}
	}
	return out, true
}

func (r rawShape) Object() (map[string]Shape, bool) {
	m, ok := r.v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]Shape, len(m))
	for k, e := range m {
		out[k] = rawShape{e}
	}
	return out, true
}
