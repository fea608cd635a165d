// Package jsoniter provides a jval.Driver backed by json-iterator/go.
package jsoniter

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/reoring/jval"
)

var api = jsoniter.Config{
	EscapeHTML:  true,
	SortMapKeys: true,
}.Froze()

// Driver returns a jval.Driver backed by json-iterator with sorted keys.
func Driver() jval.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "jsoniter" }

// Decode rejects trailing data after the top-level value.
func (driver) Decode(data []byte, opt jval.DecodeOpt) (jval.Value, error) {
	if err := jval.CheckDuplicates(data, opt); err != nil {
		return jval.Value{}, err
	}
	var raw any
	if err := api.Unmarshal(data, &raw); err != nil {
		return jval.Value{}, jval.Issues{{Path: "/", Code: jval.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return jval.DecodeShape(jval.RawShape(raw), opt)
}

func (driver) Encode(v jval.Value) ([]byte, error) { return api.Marshal(v.Raw()) }
