package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("not_json_value", nil); msg != "not a recognized JSON value" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("not_json_value", nil); msg == "not a recognized JSON value" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("whatever", nil); msg != "whatever" {
		t.Fatalf("expected code echo, got %q", msg)
	}
	if msg := T("whatever", map[string]string{"detail": "boom"}); msg != "boom" {
		t.Fatalf("expected detail, got %q", msg)
	}
	if msg := T("parse_error", map[string]string{"detail": "eof"}); msg != "parse error: eof" {
		t.Fatalf("unexpected parse_error message %q", msg)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator(t *testing.T) {
	SetTranslator(fixed("x"))
	if msg := T("max_depth", nil); msg != "x" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("max_depth", nil); msg != "max depth exceeded" {
		t.Fatalf("nil should restore english, got %q", msg)
	}
}
