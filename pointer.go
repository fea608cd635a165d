package jval

import (
	"strconv"
	"strings"

	eng "github.com/reoring/jval/internal/engine"
)

// Pointer is a parsed RFC 6901 JSON Pointer. The zero Pointer addresses the
// document root.
type Pointer struct {
	tokens []string
}

// ParsePointer parses s. Both "" and "/" address the root, matching the way
// Issue paths render the root.
func ParsePointer(s string) (Pointer, error) {
	toks, err := eng.SplitPointer(s)
	if err != nil {
		return Pointer{}, toIssues(err)
	}
	return Pointer{tokens: toks}, nil
}

// Field returns p extended by an object member name.
func (p Pointer) Field(name string) Pointer {
	return Pointer{tokens: append(append([]string{}, p.tokens...), name)}
}

// Index returns p extended by an array index.
func (p Pointer) Index(i int) Pointer {
	return Pointer{tokens: append(append([]string{}, p.tokens...), strconv.Itoa(i))}
}

// Tokens returns the unescaped reference tokens.
func (p Pointer) Tokens() []string { return append([]string(nil), p.tokens...) }

// String renders p in escaped form; the root renders as "/".
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, t := range p.tokens {
		b.WriteByte('/')
		b.WriteString(eng.EscapeToken(t))
	}
	return b.String()
}

// Lookup resolves p against v. Each token is a member name on Objects and a
// decimal index on Arrays; any miss yields absent.
func (p Pointer) Lookup(v Value) Value {
	for _, t := range p.tokens {
		switch v.kind {
		case KindObject:
			v = v.Get(t)
		case KindArray:
			i, ok := eng.ArrayIndex(t)
			if !ok {
				return Value{}
			}
			v = v.Index(i)
		default:
			return Value{}
		}
	}
	return v
}

// Replace returns a copy of v with the value at p set to x, rebuilding
// every enclosing container. Writes follow With and WithIndex: a missing
// link or a container of the wrong shape leaves v unchanged, an absent x
// removes an object member, and an index outside an existing array panics
// with *IndexError. Replacing the root returns x.
func (p Pointer) Replace(v Value, x Value) Value {
	return replaceAt(v, p.tokens, x)
}

func replaceAt(v Value, toks []string, x Value) Value {
	if len(toks) == 0 {
		return x
	}
	t, rest := toks[0], toks[1:]
	switch v.kind {
	case KindObject:
		if len(rest) == 0 {
			return v.With(t, x)
		}
		child := v.Get(t)
		if !child.Exists() {
			return v
		}
		return v.With(t, replaceAt(child, rest, x))
	case KindArray:
		i, ok := eng.ArrayIndex(t)
		if !ok {
			return v
		}
		if len(rest) == 0 {
			return v.WithIndex(i, x)
		}
		child := v.Index(i)
		if !child.Exists() {
			return v
		}
		return v.WithIndex(i, replaceAt(child, rest, x))
	default:
		return v
	}
}

// At resolves the JSON Pointer ptr against v. A malformed pointer yields
// absent like any other miss; use ParsePointer to see the error.
func (v Value) At(ptr string) Value {
	p, err := ParsePointer(ptr)
	if err != nil {
		return Value{}
	}
	return p.Lookup(v)
}

// WithAt returns a copy of v with the value at ptr set to x; see
// Pointer.Replace. A malformed pointer leaves v unchanged.
func (v Value) WithAt(ptr string, x Value) Value {
	p, err := ParsePointer(ptr)
	if err != nil {
		return v
	}
	return p.Replace(v, x)
}
