package jval

import (
	"bytes"
	"errors"

	json "github.com/goccy/go-json"

	eng "github.com/reoring/jval/internal/engine"
)

// DecodeOpt bundles decoding options. Functions accepting ...DecodeOpt use
// the last one supplied.
type DecodeOpt struct {
	// MaxDepth limits container nesting; 0 disables the check.
	MaxDepth int
	// AllowNaN accepts NaN and ±Inf (YAML can express them, JSON cannot).
	AllowNaN bool
	// RejectDuplicateKeys fails JSON input in which an object repeats a key.
	// By default the last occurrence wins.
	RejectDuplicateKeys bool
}

func lastOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}

func (o DecodeOpt) engine() eng.Options {
	return eng.Options{MaxDepth: o.MaxDepth, AllowNaN: o.AllowNaN}
}

// Decode parses JSON text into a Value with go-json, trying the variants
// null, boolean, number, string, array and object in that order at every
// node. Failures are reported as Issues.
func Decode(data []byte, opts ...DecodeOpt) (Value, error) {
	opt := lastOpt(opts)
	if err := CheckDuplicates(data, opt); err != nil {
		return Value{}, err
	}
	if !json.Valid(data) {
		// Report the decoder's own syntax error instead of a shape mismatch.
		var discard any
		err := json.Unmarshal(data, &discard)
		if err == nil {
			err = errInvalidJSON
		}
		return Value{}, singleIssue(CodeParseError, "/", err)
	}
	return DecodeShape(jsonShape(data), opt)
}

// CheckDuplicates enforces opt.RejectDuplicateKeys on JSON text. Drivers
// call it before decoding; it returns nil when the option is off.
func CheckDuplicates(data []byte, opt DecodeOpt) error {
	if !opt.RejectDuplicateKeys {
		return nil
	}
	iss, err := DetectDuplicateKeys(data, -1)
	if err != nil {
		return err
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// DecodeShape builds a Value from any probeable representation; drivers use
// it to share the decode order and error reporting of Decode.
func DecodeShape(s Shape, opts ...DecodeOpt) (Value, error) {
	raw, err := eng.Decode(s, lastOpt(opts).engine())
	if err != nil {
		return Value{}, toIssues(err)
	}
	return FromRaw(raw), nil
}

// Shape is a node of an external representation probed by DecodeShape.
type Shape = eng.Shape

// MarshalJSON encodes v with go-json. Object keys are sorted. The absent
// Value encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

// UnmarshalJSON decodes data in place with Decode's default options. A
// struct field of type Value that is missing from the input stays absent.
func (v *Value) UnmarshalJSON(data []byte) error {
	out, err := Decode(data)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// jsonShape probes a JSON fragment by attempting to unmarshal it into each
// variant's Go type.
type jsonShape []byte

var (
	nullLiteral    = []byte("null")
	errInvalidJSON = errors.New("jval: invalid JSON")
)

func (j jsonShape) Null() bool { return bytes.Equal(bytes.TrimSpace(j), nullLiteral) }

func (j jsonShape) Bool() (bool, bool) {
	var b bool
	if err := json.Unmarshal(j, &b); err != nil {
		return false, false
	}
	return b, true
}

func (j jsonShape) Number() (float64, bool) {
	var f float64
	if err := json.Unmarshal(j, &f); err != nil {
		return 0, false
	}
	return f, true
}

func (j jsonShape) String() (string, bool) {
	var s string
	if err := json.Unmarshal(j, &s); err != nil {
		return "", false
	}
	return s, true
}

func (j jsonShape) Array() ([]Shape, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(j, &elems); err != nil {
		return nil, false
	}
	out := make([]Shape, len(elems))
	for i, e := range elems {
		out[i] = jsonShape(e)
	}
	return out, true
}

func (j jsonShape) Object() (map[string]Shape, bool) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(j, &members); err != nil {
		return nil, false
	}
	out := make(map[string]Shape, len(members))
	for k, m := range members {
		out[k] = jsonShape(m)
	}
	return out, true
}
