package jval_test

import (
	"math"
	"strings"
	"testing"

	"github.com/reoring/jval"
	fastjsondrv "github.com/reoring/jval/source/fastjson"
	stdjson "github.com/reoring/jval/source/json"
	jsoniterdrv "github.com/reoring/jval/source/jsoniter"
	jstreamdrv "github.com/reoring/jval/source/jstream"
	jxdrv "github.com/reoring/jval/source/jx"
)

// strictDrivers reject every malformed input on their own.
func strictDrivers() []jval.Driver {
	return []jval.Driver{jval.DefaultDriver(), stdjson.Driver(), fastjsondrv.Driver(), jxdrv.Driver(), jsoniterdrv.Driver()}
}

func allDrivers() []jval.Driver {
	return append(strictDrivers(), jstreamdrv.Driver())
}

const conformanceDoc = `{"s":"a\"bé","n":[0,-1.5,1e3,12345678],"b":[true,false],"z":null,"o":{"":{},"k":[]}}`

func TestDrivers_DecodeAgree(t *testing.T) {
	want, err := jval.Decode([]byte(conformanceDoc))
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range allDrivers() {
		got, err := d.Decode([]byte(conformanceDoc), jval.DecodeOpt{})
		if err != nil {
			t.Fatalf("%s: %v", d.Name(), err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: got %v want %v", d.Name(), got, want)
		}
	}
}

func TestDrivers_EncodeRoundTrip(t *testing.T) {
	v := jval.ObjectOf(map[string]any{
		"list":  []any{1, "two", nil, true, 4.25},
		"inner": map[string]any{"x": map[string]any{}, "y": []any{}},
		"uni":   "ü\n\t",
	})
	for _, d := range allDrivers() {
		out, err := d.Encode(v)
		if err != nil {
			t.Fatalf("%s: encode: %v", d.Name(), err)
		}
		back, err := jval.Decode(out)
		if err != nil {
			t.Fatalf("%s: output %s does not decode: %v", d.Name(), out, err)
		}
		if !back.Equal(v) {
			t.Fatalf("%s: round trip mismatch: %s", d.Name(), out)
		}
		if strings.Index(string(out), `"inner"`) > strings.Index(string(out), `"list"`) {
			t.Fatalf("%s: keys not sorted: %s", d.Name(), out)
		}
	}
}

func TestDrivers_Errors(t *testing.T) {
	for _, d := range strictDrivers() {
		for _, in := range []string{`{`, `[1,]`, `nul`, `{"a":1} x`} {
			_, err := d.Decode([]byte(in), jval.DecodeOpt{})
			iss, ok := jval.AsIssues(err)
			if !ok || iss[0].Code != jval.CodeParseError {
				t.Fatalf("%s %q: expected parse_error, got %v", d.Name(), in, err)
			}
		}
	}
	for _, d := range allDrivers() {
		if _, err := d.Decode([]byte(`{"a":`), jval.DecodeOpt{}); err == nil {
			t.Fatalf("%s: truncated input must fail", d.Name())
		}

		_, err := d.Decode([]byte(`{"a":{"k":1,"k":2}}`), jval.DecodeOpt{RejectDuplicateKeys: true})
		iss, ok := jval.AsIssues(err)
		if !ok || iss[0].Code != jval.CodeDuplicateKey || iss[0].Path != "/a/k" {
			t.Fatalf("%s: expected duplicate_key at /a/k, got %v", d.Name(), err)
		}

		_, err = d.Decode([]byte(`[[[1]]]`), jval.DecodeOpt{MaxDepth: 2})
		iss, ok = jval.AsIssues(err)
		if !ok || iss[0].Code != jval.CodeMaxDepth {
			t.Fatalf("%s: expected max_depth, got %v", d.Name(), err)
		}

		if _, err := d.Encode(jval.Array(jval.Number(math.Inf(1)))); err == nil {
			t.Fatalf("%s: Inf must not encode", d.Name())
		}
	}
}

func TestSetDriver_RoutesParseAndMarshal(t *testing.T) {
	t.Cleanup(jval.UseDefaultDriver)

	if jval.CurrentDriver().Name() != "go-json" {
		t.Fatalf("default driver = %s", jval.CurrentDriver().Name())
	}
	jval.SetDriver(nil)
	if jval.CurrentDriver().Name() != "go-json" {
		t.Fatalf("nil driver must be ignored")
	}

	jval.SetDriver(jxdrv.Driver())
	if jval.CurrentDriver().Name() != "jx" {
		t.Fatalf("driver not switched")
	}
	v, err := jval.ParseReader(strings.NewReader(`{"a":[1,2]}`))
	if err != nil || !v.At("/a/1").EqualInt(2) {
		t.Fatalf("ParseReader = %v %v", v, err)
	}
	out, err := jval.Marshal(v)
	if err != nil || string(out) != `{"a":[1,2]}` {
		t.Fatalf("Marshal = %s %v", out, err)
	}

	jval.UseDefaultDriver()
	if _, err := jval.Parse([]byte(`{"a":1,"a":2}`), jval.DecodeOpt{RejectDuplicateKeys: true}); err == nil {
		t.Fatalf("options must reach the driver")
	}
}
