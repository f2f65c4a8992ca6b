package linestruct

import (
	"strings"

	"github.com/goccy/go-json"
)

// Format is the result of classifying an arbitrary text blob. See spec
// §4.8.
type Format int

const (
	FormatOther Format = iota
	FormatJSON
	FormatLineStruct
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatLineStruct:
		return "linestruct"
	default:
		return "other"
	}
}

// Classify guesses whether s is JSON, LineStruct, or neither, without
// fully committing to either parse unless the shape warrants it: text that
// looks bracketed is tried as JSON first, and text that looks like a
// LineStruct header is validated as LineStruct before being accepted. See
// spec §4.8.
func Classify(s string) Format {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FormatOther
	}

	looksLikeJSON := (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"))
	if looksLikeJSON {
		var probe any
		if err := json.Unmarshal([]byte(trimmed), &probe); err == nil {
			return FormatJSON
		}
	}

	if strings.HasPrefix(trimmed, entityPrefix) && IsValidLineStruct(s) {
		return FormatLineStruct
	}

	return FormatOther
}
