package jval

import (
	eng "github.com/reoring/jval/internal/engine"
)

// DetectDuplicateKeys reports, as Issues, every object key that repeats
// within the same object of the JSON text data. maxIssues < 0 means
// unlimited. Malformed input returns a CodeParseError error.
func DetectDuplicateKeys(data []byte, maxIssues int) (Issues, error) {
	si, err := eng.DetectDuplicateKeys(data, maxIssues)
	if err != nil {
		return nil, toIssues(err)
	}
	return fromEngineIssues(si), nil
}

// RawShape exposes a raw decoder tree as a Shape so that drivers decoding
// into []any/map[string]any get the checks of DecodeShape. Unlike FromRaw,
// a node outside the accepted shapes fails instead of being dropped.
func RawShape(raw any) Shape { return eng.RawShape(raw) }
