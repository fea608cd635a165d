package jval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/jval/i18n"
	eng "github.com/reoring/jval/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotJSONValue   = eng.CodeNotJSONValue
	CodeInvalidNumber  = eng.CodeInvalidNumber
	CodeMaxDepth       = eng.CodeMaxDepth
	CodeDuplicateKey   = eng.CodeDuplicateKey
	CodeParseError     = eng.CodeParseError
	CodeInvalidPointer = eng.CodeInvalidPointer
	CodeInvalidType    = eng.CodeInvalidType
	CodeInvalidFormat  = eng.CodeInvalidFormat
)

// Issue represents a single decode or navigation failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. not_json_value at /a/1
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As reach the codec error underneath.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IndexError is the panic value raised by indexed writes outside the bounds
// of an array. Out-of-range writes are caller bugs, not absences.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "jval: index " + strconv.Itoa(e.Index) + " out of range [0:" + strconv.Itoa(e.Len) + "]"
}

func singleIssue(code, path string, cause error) Issues {
	return Issues{{Path: path, Code: code, Message: i18n.T(code, nil), Cause: cause}}
}

// toIssues maps engine and codec errors onto the public Issues model.
func toIssues(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsIssues(err); ok {
		return err
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: i18n.T(ie.Code, map[string]string{"detail": ie.Message})}}
	}
	return singleIssue(CodeParseError, "/", err)
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = append(iss, Issue{Code: s.Code, Path: s.Path, Message: i18n.T(s.Code, map[string]string{"detail": s.Message})})
	}
	return iss
}
