// Package codec converts between jval Values and Go domain types.
package codec

import (
	"github.com/reoring/jval"
	"github.com/reoring/jval/i18n"
)

// Codec converts a Value to T and back. Decode failures are jval.Issues
// rooted at "/"; use DecodeAt to report them at a location in a larger
// document.
type Codec[T any] interface {
	Decode(v jval.Value) (T, error)
	Encode(t T) (jval.Value, error)
}

// DecodeAt resolves ptr against doc and decodes the result with c. Issue
// paths are rebased onto ptr.
func DecodeAt[T any](doc jval.Value, ptr string, c Codec[T]) (T, error) {
	var zero T
	p, err := jval.ParsePointer(ptr)
	if err != nil {
		return zero, err
	}
	out, err := c.Decode(p.Lookup(doc))
	if err == nil {
		return out, nil
	}
	iss, ok := jval.AsIssues(err)
	if !ok {
		return zero, err
	}
	base := p.String()
	rebased := make(jval.Issues, len(iss))
	for i, it := range iss {
		it.Path = rebase(base, it.Path)
		rebased[i] = it
	}
	return zero, rebased
}

func rebase(base, path string) string {
	switch {
	case base == "/":
		return path
	case path == "/" || path == "":
		return base
	default:
		return base + path
	}
}

func typeIssue(expected string, got jval.Value) jval.Issues {
	return jval.Issues{{
		Path:    "/",
		Code:    jval.CodeInvalidType,
		Message: i18n.T(jval.CodeInvalidType, map[string]string{"expected": expected, "actual": got.Kind().String()}),
	}}
}

// Identity passes Values through unchanged. Absent input is an error, so
// Identity doubles as a presence check.
func Identity() Codec[jval.Value] { return identityCodec{} }

type identityCodec struct{}

func (identityCodec) Decode(v jval.Value) (jval.Value, error) {
	if !v.Exists() {
		return jval.Value{}, typeIssue("value", v)
	}
	return v, nil
}

func (identityCodec) Encode(v jval.Value) (jval.Value, error) { return v, nil }
