// Package jstream provides a jval.Driver whose decoder is bcicen/jstream.
// Encoding uses the default driver.
package jstream

import (
	"bytes"
	"errors"
	"io"

	"github.com/bcicen/jstream"

	"github.com/reoring/jval"
)

// Driver returns a jval.Driver backed by jstream.
func Driver() jval.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "jstream" }

var errNotSingle = errors.New("jstream: input must hold exactly one JSON value")

func (driver) Decode(data []byte, opt jval.DecodeOpt) (jval.Value, error) {
	if err := jval.CheckDuplicates(data, opt); err != nil {
		return jval.Value{}, err
	}
	// Depth 0 emits the top-level value only.
	dec := jstream.NewDecoder(bytes.NewReader(data), 0)
	var values []any
	for mv := range dec.Stream() {
		values = append(values, mv.Value)
	}
	if err := dec.Err(); err != nil && !errors.Is(err, io.EOF) {
		return jval.Value{}, parseError(err)
	}
	if len(values) != 1 {
		return jval.Value{}, parseError(errNotSingle)
	}
	return jval.DecodeShape(jval.RawShape(values[0]), opt)
}

func (driver) Encode(v jval.Value) ([]byte, error) { return jval.DefaultDriver().Encode(v) }

func parseError(err error) error {
	return jval.Issues{{Path: "/", Code: jval.CodeParseError, Message: err.Error(), Cause: err}}
}
