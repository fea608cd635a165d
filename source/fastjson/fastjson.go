// Package fastjson provides a jval.Driver backed by valyala/fastjson.
package fastjson

import (
	"errors"
	"math"

	"github.com/valyala/fastjson"

	"github.com/reoring/jval"
)

// Driver returns a jval.Driver backed by fastjson. Parsers and arenas are
// pooled, so the driver is safe for concurrent use.
func Driver() jval.Driver { return &driver{} }

type driver struct {
	parsers fastjson.ParserPool
	arenas  fastjson.ArenaPool
}

func (*driver) Name() string { return "fastjson" }

func (d *driver) Decode(data []byte, opt jval.DecodeOpt) (jval.Value, error) {
	if err := jval.CheckDuplicates(data, opt); err != nil {
		return jval.Value{}, err
	}
	p := d.parsers.Get()
	defer d.parsers.Put(p)
	fv, err := p.ParseBytes(data)
	if err != nil {
		return jval.Value{}, jval.Issues{{Path: "/", Code: jval.CodeParseError, Message: err.Error(), Cause: err}}
	}
	// fv points into p; the tree must be fully converted before p is returned.
	return jval.DecodeShape(shape{fv}, opt)
}

var errNonFinite = errors.New("fastjson: NaN and Inf cannot be encoded")

func (d *driver) Encode(v jval.Value) ([]byte, error) {
	a := d.arenas.Get()
	defer d.arenas.Put(a)
	fv, err := build(a, v)
	if err != nil {
		return nil, err
	}
	return fv.MarshalTo(nil), nil
}

// build converts v into arena-backed values. Object keys are emitted in
// sorted order.
func build(a *fastjson.Arena, v jval.Value) (*fastjson.Value, error) {
	switch v.Kind() {
	case jval.KindArray:
		arr := a.NewArray()
		elems, _ := v.Elements()
		for i, e := range elems {
			ev, err := build(a, e)
			if err != nil {
				return nil, err
			}
			arr.SetArrayItem(i, ev)
		}
		return arr, nil
	case jval.KindObject:
		obj := a.NewObject()
		for _, k := range v.Keys() {
			mv, err := build(a, v.Get(k))
			if err != nil {
				return nil, err
			}
			obj.Set(k, mv)
		}
		return obj, nil
	case jval.KindBool:
		if b, _ := v.AsBool(); b {
			return a.NewTrue(), nil
		}
		return a.NewFalse(), nil
	case jval.KindNumber:
		f, _ := v.AsFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errNonFinite
		}
		return a.NewNumberFloat64(f), nil
	case jval.KindString:
		s, _ := v.AsString()
		return a.NewString(s), nil
	default:
		return a.NewNull(), nil
	}
}

// shape adapts a parsed fastjson value to jval.Shape. fastjson reports the
// exact type of every node, so at most one probe matches.
type shape struct{ v *fastjson.Value }

func (s shape) Null() bool { return s.v.Type() == fastjson.TypeNull }

func (s shape) Bool() (bool, bool) {
	switch s.v.Type() {
	case fastjson.TypeTrue:
		return true, true
	case fastjson.TypeFalse:
		return false, true
	}
	return false, false
}

func (s shape) Number() (float64, bool) {
	if s.v.Type() != fastjson.TypeNumber {
		return 0, false
	}
	f, err := s.v.Float64()
	return f, err == nil
}

func (s shape) String() (string, bool) {
	if s.v.Type() != fastjson.TypeString {
		return "", false
	}
	b, err := s.v.StringBytes()
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (s shape) Array() ([]jval.Shape, bool) {
	elems, err := s.v.Array()
	if err != nil {
		return nil, false
	}
	out := make([]jval.Shape, len(elems))
	for i, e := range elems {
		out[i] = shape{e}
	}
	return out, true
}

func (s shape) Object() (map[string]jval.Shape, bool) {
	o, err := s.v.Object()
	if err != nil {
		return nil, false
	}
	out := make(map[string]jval.Shape, o.Len())
	o.Visit(func(k []byte, v *fastjson.Value) {
		out[string(k)] = shape{v}
	})
	return out, true
}

