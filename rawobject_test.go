package jval_test

import (
	"encoding/json"
	"testing"

	"github.com/reoring/jval"
)

func TestRawObject_TypedReads(t *testing.T) {
	var decoded map[string]any
	in := `{"trunum":true,"falsnum":false,"pi":3.14,"n":-2,"s":"text","nul":null}`
	if err := json.Unmarshal([]byte(in), &decoded); err != nil {
		t.Fatal(err)
	}
	o := jval.RawObject(decoded)

	if b, ok := o.Bool("trunum"); !ok || !b {
		t.Fatalf("trunum = %v %v", b, ok)
	}
	if b, ok := o.Bool("falsnum"); !ok || b {
		t.Fatalf("falsnum = %v %v", b, ok)
	}
	if _, ok := o.Int("trunum"); ok {
		t.Fatalf("booleans must not read as numbers")
	}
	if _, ok := o.Float64("falsnum"); ok {
		t.Fatalf("booleans must not read as numbers")
	}
	if _, ok := o.Bool("n"); ok {
		t.Fatalf("numbers must not read as booleans")
	}
	if i, ok := o.Int("pi"); !ok || i != 3 {
		t.Fatalf("Int(pi) = %v %v", i, ok)
	}
	if f, ok := o.Float64("pi"); !ok || f != 3.14 {
		t.Fatalf("Float64(pi) = %v %v", f, ok)
	}
	if i, ok := o.Int("n"); !ok || i != -2 {
		t.Fatalf("Int(n) = %v %v", i, ok)
	}
	if s, ok := o.String("s"); !ok || s != "text" {
		t.Fatalf("String(s) = %q %v", s, ok)
	}
	if _, ok := o.String("missing"); ok {
		t.Fatalf("missing key must fail")
	}

	if o.Value("nul").Kind() != jval.KindNull {
		t.Fatalf("null member should be Null")
	}
	if o.Value("missing").Exists() {
		t.Fatalf("missing member should be absent")
	}
	if !jval.FromRaw(decoded).Get("trunum").EqualBool(true) {
		t.Fatalf("FromRaw should classify true as a boolean")
	}
}

func TestRawObject_GoNumbers(t *testing.T) {
	o := jval.RawObject{
		"int":   7,
		"i64":   int64(8),
		"u8":    uint8(9),
		"jnum":  json.Number("10"),
		"jflt":  json.Number("10.9"),
		"float": float32(1.5),
	}
	want := map[string]int{"int": 7, "i64": 8, "u8": 9, "jnum": 10, "jflt": 10, "float": 1}
	for k, w := range want {
		if got, ok := o.Int(k); !ok || got != w {
			t.Fatalf("Int(%s) = %v %v, want %v", k, got, ok, w)
		}
	}

	var nilObj jval.RawObject
	if _, ok := nilObj.Int("x"); ok {
		t.Fatalf("nil RawObject must behave as empty")
	}
}
