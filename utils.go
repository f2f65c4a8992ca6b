package linestruct

import (
	"fmt"
	"strings"
)

// replace substitutes {key} placeholders in template with the string form
// of the matching entry in params.
func replace(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// trimCR strips a single trailing carriage return, tolerating CRLF line
// endings on input even though LineStruct never emits them (spec §6.1).
func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}

// joinFields joins already-escaped field segments with the field
// delimiter, the inverse of splitFields.
func joinFields(parts []string) string {
	return strings.Join(parts, string(FieldDelim))
}
