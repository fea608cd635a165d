package jval_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jval"
)

func TestFromYAML_Scalars(t *testing.T) {
	in := []byte(`
int: 1
float: 2.5
yes: true
nothing: ~
quoted: "42"
date: 2001-12-14
list: [a, 1, false]
`)
	v, err := jval.FromYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	want := jval.ObjectOf(map[string]any{
		"int":     1,
		"float":   2.5,
		"yes":     true,
		"nothing": nil,
		"quoted":  "42",
		"date":    "2001-12-14",
		"list":    []any{"a", 1, false},
	})
	if !v.Equal(want) {
		t.Fatalf("got %v\nwant %v", v, want)
	}
}

func TestFromYAML_Empty(t *testing.T) {
	v, err := jval.FromYAML(nil)
	if err != nil || v.Kind() != jval.KindNull {
		t.Fatalf("empty document should be Null, got %v %v", v, err)
	}
}

func TestFromYAML_MergeKeys(t *testing.T) {
	in := []byte(`
base: &b
  x: 1
  y: 2
derived:
  <<: *b
  y: 3
`)
	v, err := jval.FromYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	if !v.At("/derived/x").EqualInt(1) || !v.At("/derived/y").EqualInt(3) {
		t.Fatalf("merge not applied: %v", v)
	}
	if v.At("/derived").Has("<<") {
		t.Fatalf("merge key leaked into output")
	}
}

func TestFromYAML_NotJSON(t *testing.T) {
	_, err := jval.FromYAML([]byte("a:\n  - ok\n  - !custom 1\n"))
	iss, ok := jval.AsIssues(err)
	if !ok || iss[0].Code != jval.CodeNotJSONValue || iss[0].Path != "/a/1" {
		t.Fatalf("expected not_json_value at /a/1, got %v", err)
	}

	_, err = jval.FromYAML([]byte("a: [unclosed\n"))
	iss, ok = jval.AsIssues(err)
	if !ok || iss[0].Code != jval.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestToYAML_RoundTrip(t *testing.T) {
	v := jval.ObjectOf(map[string]any{"b": []any{1, "two"}, "a": map[string]any{"n": nil}})
	out, err := jval.ToYAML(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := jval.FromYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Fatalf("round trip mismatch:\n%s", out)
	}
}

func TestYAML_StructField(t *testing.T) {
	type doc struct {
		Deploy jval.Value `yaml:"deploy"`
		Unset  jval.Value `yaml:"unset"`
	}
	var d doc
	if err := yaml.Unmarshal([]byte("deploy:\n  replicas: 3\n  ports: [80, 443]\nunset: null\n"), &d); err != nil {
		t.Fatal(err)
	}
	if !d.Deploy.Get("replicas").EqualInt(3) || !d.Deploy.At("/ports/1").EqualInt(443) {
		t.Fatalf("deploy = %v", d.Deploy)
	}
	if d.Unset.Exists() {
		t.Fatalf("null node should leave the field absent")
	}

	out, err := yaml.Marshal(doc{Deploy: jval.ObjectOf(map[string]any{"k": "v"})})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "deploy:\n    k: v\nunset: null\n" {
		t.Fatalf("unexpected yaml %q", out)
	}
}
