package engine

import (
	"strconv"
	"strings"
)

// Issue codes produced by the engine. The root package re-exports them.
const (
	CodeNotJSONValue   = "not_json_value"
	CodeInvalidNumber  = "invalid_number"
	CodeMaxDepth       = "max_depth"
	CodeDuplicateKey   = "duplicate_key"
	CodeParseError     = "parse_error"
	CodeInvalidPointer = "invalid_pointer"
	CodeInvalidType    = "invalid_type"
	CodeInvalidFormat  = "invalid_format"
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// NormalizePath renders the document root as "/".
func NormalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// EscapeToken escapes a reference token per RFC 6901.
func EscapeToken(s string) string { return pointerEscaper.Replace(s) }

// JoinPointer appends an escaped reference token to base.
func JoinPointer(base, token string) string {
	return base + "/" + EscapeToken(token)
}

// SplitPointer parses an RFC 6901 pointer into unescaped reference tokens.
// Both "" and "/" address the root. A pointer that does not start with '/'
// or contains a '~' not followed by '0' or '1' is rejected.
func SplitPointer(ptr string) ([]string, error) {
	if ptr == "" || ptr == "/" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, IssueError{SimpleIssue{Code: CodeInvalidPointer, Path: ptr, Message: "pointer must start with '/'"}}
	}
	parts := strings.Split(ptr[1:], "/")
	for i, p := range parts {
		for j := 0; j < len(p); j++ {
			if p[j] != '~' {
				continue
			}
			if j+1 >= len(p) || (p[j+1] != '0' && p[j+1] != '1') {
				return nil, IssueError{SimpleIssue{Code: CodeInvalidPointer, Path: ptr, Message: "invalid escape in pointer token " + strconv.Quote(p)}}
			}
		}
		parts[i] = pointerUnescaper.Replace(p)
	}
	return parts, nil
}

// ArrayIndex parses a reference token as an array index. Leading zeros,
// signs and the "-" token are not indices.
func ArrayIndex(tok string) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}
