package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	pendingKey   string
	nextIndex    int
}

// DetectDuplicateKeys scans JSON text and reports every object key that
// appears more than once in the same object. maxIssues < 0 means unlimited.
// Syntax errors are returned as a CodeParseError issue.
func DetectDuplicateKeys(data []byte, maxIssues int) ([]SimpleIssue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var issues []SimpleIssue
	var stack []dupFrame

	// childPath returns the pointer of the value that starts at the current token.
	childPath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := top.path + "/" + strconv.Itoa(top.nextIndex)
			top.nextIndex++
			return p
		}
		p := JoinPointer(top.path, top.pendingKey)
		top.expectingKey = true
		return p
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return issues, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: err.Error()}}
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				p := childPath()
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: p})
			case '[':
				p := childPath()
				stack = append(stack, dupFrame{kind: kindArray, path: p})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						issues = append(issues, SimpleIssue{Code: CodeDuplicateKey, Path: JoinPointer(top.path, v), Message: "key '" + v + "' duplicated"})
						if maxIssues > 0 && len(issues) >= maxIssues {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					top.pendingKey = v
					continue
				}
			}
			childPath()
		default:
			childPath()
		}
	}
	if len(stack) > 0 {
		return issues, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "unexpected end of JSON input"}}
	}
	return issues, nil
}
