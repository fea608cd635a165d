package engine

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// Shape is a single node of an external representation (a JSON fragment, a
// YAML node, a parser-owned value) that can be probed for each JSON variant.
// Every probe reports false when the node does not have that shape.
type Shape interface {
	Null() bool
	Bool() (bool, bool)
	Number() (float64, bool)
	String() (string, bool)
	Array() ([]Shape, bool)
	Object() (map[string]Shape, bool)
}

// Options controls structured decoding.
type Options struct {
	// MaxDepth limits container nesting; 0 disables the check.
	MaxDepth int
	// AllowNaN accepts NaN and ±Inf numbers, which cannot be re-encoded as JSON.
	AllowNaN bool
}

// Decode builds a raw tree ([]any, map[string]any, bool, float64, string,
// nil) from s. Variants are attempted in a fixed order: null, boolean,
// number, string, array, object. A node matching none of them fails with a
// CodeNotJSONValue issue carrying its JSON Pointer.
func Decode(s Shape, opt Options) (any, error) {
	return decode(s, "", 0, opt)
}

func decode(s Shape, path string, depth int, opt Options) (any, error) {
	if s == nil {
		return nil, IssueError{SimpleIssue{Code: CodeNotJSONValue, Path: NormalizePath(path), Message: "not a recognized JSON value"}}
	}
	if s.Null() {
		return nil, nil
	}
	if b, ok := s.Bool(); ok {
		return b, nil
	}
	if f, ok := s.Number(); ok {
		if !opt.AllowNaN && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return nil, IssueError{SimpleIssue{Code: CodeInvalidNumber, Path: NormalizePath(path), Message: "non-finite number"}}
		}
		return f, nil
	}
	if str, ok := s.String(); ok {
		return str, nil
	}
	if elems, ok := s.Array(); ok {
		if err := checkDepth(path, depth, opt); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(elems))
		for i, e := range elems {
			v, err := decode(e, path+"/"+strconv.Itoa(i), depth+1, opt)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	if members, ok := s.Object(); ok {
		if err := checkDepth(path, depth, opt); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(members))
		// Sorted so that the reported failure does not depend on map order.
		for _, k := range slices.Sorted(maps.Keys(members)) {
			v, err := decode(members[k], JoinPointer(path, k), depth+1, opt)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}
	return nil, IssueError{SimpleIssue{Code: CodeNotJSONValue, Path: NormalizePath(path), Message: "not a recognized JSON value"}}
}

func checkDepth(path string, depth int, opt Options) error {
	if opt.MaxDepth > 0 && depth >= opt.MaxDepth {
		return IssueError{SimpleIssue{Code: CodeMaxDepth, Path: NormalizePath(path), Message: "max depth exceeded"}}
	}
	return nil
}
