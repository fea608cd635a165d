package codec

import (
	"time"

	"github.com/reoring/jval"
	"github.com/reoring/jval/i18n"
)

// TimeRFC3339 converts between RFC 3339 strings and time.Time. Encoding
// normalizes to UTC with trailing zero fractions trimmed.
func TimeRFC3339() Codec[time.Time] { return rfc3339Codec{} }

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(v jval.Value) (time.Time, error) {
	s, ok := v.AsString()
	if !ok {
		return time.Time{}, typeIssue("string", v)
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return time.Time{}, jval.Issues{{
			Path:    "/",
			Code:    jval.CodeInvalidFormat,
			Message: i18n.T(jval.CodeInvalidFormat, map[string]string{"format": "RFC3339 time"}),
			Cause:   err,
		}}
	}
	return t, nil
}

func (rfc3339Codec) Encode(t time.Time) (jval.Value, error) {
	return jval.String(t.UTC().Format(time.RFC3339Nano)), nil
}

func parseRFC3339(s string) (time.Time, error) {
	// RFC3339Nano accepts any fraction length, including none.
	return time.Parse(time.RFC3339Nano, s)
}
