// Package jx provides a jval.Driver backed by go-faster/jx: a streaming
// decoder feeding the raw-tree path and a direct Value encoder.
package jx

import (
	"errors"
	"math"

	"github.com/go-faster/jx"

	"github.com/reoring/jval"
)

// Driver returns a jval.Driver backed by jx.
func Driver() jval.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "jx" }

var (
	errInvalid   = errors.New("jx: invalid JSON")
	errNonFinite = errors.New("jx: NaN and Inf cannot be encoded")
)

func (driver) Decode(data []byte, opt jval.DecodeOpt) (jval.Value, error) {
	if err := jval.CheckDuplicates(data, opt); err != nil {
		return jval.Value{}, err
	}
	if !jx.Valid(data) {
		return jval.Value{}, parseError(errInvalid)
	}
	raw, err := readAny(jx.DecodeBytes(data))
	if err != nil {
		return jval.Value{}, parseError(err)
	}
	return jval.DecodeShape(jval.RawShape(raw), opt)
}

func parseError(err error) error {
	return jval.Issues{{Path: "/", Code: jval.CodeParseError, Message: err.Error(), Cause: err}}
}

// readAny decodes one value into a raw tree.
func readAny(d *jx.Decoder) (any, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Bool:
		return d.Bool()
	case jx.Number:
		return d.Float64()
	case jx.String:
		return d.Str()
	case jx.Array:
		out := []any{}
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := readAny(d)
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
		return out, err
	case jx.Object:
		out := map[string]any{}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := readAny(d)
			if err != nil {
				return err
			}
			out[key] = v
			return nil
		})
		return out, err
	default:
		return nil, errInvalid
	}
}

func (driver) Encode(v jval.Value) ([]byte, error) {
	e := &jx.Encoder{}
	if err := write(e, v); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// write emits v; object keys are sorted.
func write(e *jx.Encoder, v jval.Value) error {
	switch v.Kind() {
	case jval.KindArray:
		elems, _ := v.Elements()
		var err error
		e.Arr(func(e *jx.Encoder) {
			for _, el := range elems {
				if err == nil {
					err = write(e, el)
				}
			}
		})
		return err
	case jval.KindObject:
		var err error
		e.Obj(func(e *jx.Encoder) {
			for _, k := range v.Keys() {
				if err != nil {
					return
				}
				e.FieldStart(k)
				err = write(e, v.Get(k))
			}
		})
		return err
	case jval.KindBool:
		b, _ := v.AsBool()
		e.Bool(b)
	case jval.KindNumber:
		f, _ := v.AsFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errNonFinite
		}
		e.Float64(f)
	case jval.KindString:
		s, _ := v.AsString()
		e.Str(s)
	default:
		e.Null()
	}
	return nil
}
