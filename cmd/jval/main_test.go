package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/jval"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestGetCmd(t *testing.T) {
	in := `{"items":[{"name":"a"},{"name":"b","tags":["x"]}]}`
	for name := range drivers {
		var out bytes.Buffer
		if err := getCmd([]string{"-driver", name, "/items/1"}, strings.NewReader(in), &out); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if out.String() != `{"name":"b","tags":["x"]}`+"\n" {
			t.Fatalf("%s: got %q", name, out.String())
		}
	}
	if jval.CurrentDriver().Name() != "go-json" {
		t.Fatalf("driver not restored")
	}

	var out bytes.Buffer
	if err := getCmd([]string{"/items/9"}, strings.NewReader(in), &out); err == nil {
		t.Fatalf("missing value should fail")
	}
	if err := getCmd([]string{"-driver", "nope", "/"}, strings.NewReader(in), &out); err == nil {
		t.Fatalf("unknown driver should fail")
	}
	if err := getCmd(nil, strings.NewReader(in), &out); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestGetCmd_YAMLFile(t *testing.T) {
	p := writeFile(t, "doc.yaml", "deploy:\n  replicas: 3\n")
	var out bytes.Buffer
	if err := getCmd([]string{"/deploy/replicas", p}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestFmtCmd(t *testing.T) {
	var out bytes.Buffer
	if err := fmtCmd(nil, strings.NewReader(` { "b" : 1 , "a" : [ true ] } `), &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != `{"a":[true],"b":1}`+"\n" {
		t.Fatalf("got %q", out.String())
	}

	out.Reset()
	if err := fmtCmd([]string{"-yaml"}, strings.NewReader(`{"a":"x"}`), &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a: x\n" {
		t.Fatalf("got %q", out.String())
	}

	if err := fmtCmd(nil, strings.NewReader(`{`), &out); err == nil {
		t.Fatalf("malformed input should fail")
	}
}

func TestEqCmd(t *testing.T) {
	a := writeFile(t, "a.json", `{"n":1,"l":[1,2]}`)
	b := writeFile(t, "b.yaml", "l: [1, 2]\nn: 1.0\n")
	c := writeFile(t, "c.json", `{"n":1,"l":[2,1]}`)

	same, err := eqCmd([]string{a, b})
	if err != nil || !same {
		t.Fatalf("a and b should be equal: %v %v", same, err)
	}
	same, err = eqCmd([]string{a, c})
	if err != nil || same {
		t.Fatalf("array order matters: %v %v", same, err)
	}
	if _, err := eqCmd([]string{a}); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
