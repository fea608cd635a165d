// Package json provides a jval.Driver backed by the standard encoding/json
// package.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/reoring/jval"
)

// Driver returns a jval.Driver backed by encoding/json.
func Driver() jval.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "encoding/json" }

// Decode reads exactly one JSON value; trailing data is a parse error.
func (driver) Decode(data []byte, opt jval.DecodeOpt) (jval.Value, error) {
	if err := jval.CheckDuplicates(data, opt); err != nil {
		return jval.Value{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return jval.Value{}, parseError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return jval.Value{}, parseError(errTrailingData)
	}
	return jval.DecodeShape(jval.RawShape(raw), opt)
}

func (driver) Encode(v jval.Value) ([]byte, error) { return json.Marshal(v.Raw()) }

var errTrailingData = errors.New("json: trailing data after top-level value")

func parseError(err error) error {
	return jval.Issues{{Path: "/", Code: jval.CodeParseError, Message: err.Error(), Cause: err}}
}
