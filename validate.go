package linestruct

import "strings"

// decodeValue decodes a single raw (still-escaped) value against t,
// dispatching by Kind per spec §4.4.1. raw is the exact field-slot text;
// an empty string for an optional primitive/enum/array/object is the
// caller's signal to treat the slot as absent and is handled before this
// function is reached for primitives, but Array/Object re-check emptiness
// themselves since "empty" means "missing delimiters", not "empty text".
func decodeValue(t *Type, raw string, strict bool) (*Node, *FieldError) {
	switch t.Kind {
	case KindArray:
		return decodeArrayValue(t, raw, strict)
	case KindObject:
		return decodeObjectValue(t, raw, strict)
	case KindEnum:
		return decodeEnum(t, Unescape(raw))
	default:
		value := Unescape(raw)
		if !checkPrimitiveSyntax(t.Kind, value) {
			return nil, NewFieldError(KindValueSyntax, ErrValueSyntax,
				"value_syntax", "{value} is not a valid {kind}",
				map[string]any{"value": value, "kind": t.Kind.String()})
		}
		return &Node{Kind: NodePrimitive, Prim: primKindForType(t.Kind), Str: value}, nil
	}
}

// zeroValueNode is the tolerant-mode fallback for a required primitive whose
// slot is missing or empty (spec §9 Open Questions): coerce to the type's
// zero value instead of failing the row. A non-empty value that fails its
// lexical check is a row error in both modes.
func zeroValueNode(kind Kind) *Node {
	prim := primKindForType(kind)
	switch kind {
	case KindInt, KindFloat:
		return &Node{Kind: NodePrimitive, Prim: prim, Str: "0"}
	case KindBool:
		return &Node{Kind: NodePrimitive, Prim: prim, Str: "false"}
	default:
		return &Node{Kind: NodePrimitive, Prim: prim, Str: ""}
	}
}

// decodeObjectValue enforces the `‹...›` delimiter pair before handing off
// to decodeObject.
func decodeObjectValue(t *Type, raw string, strict bool) (*Node, *FieldError) {
	if raw == "" {
		return nullNode(), nil
	}
	inner, ok := stripDelims(raw, ObjectStart, ObjectEnd)
	if !ok {
		return nil, NewFieldError(KindDelimiterMismatch, ErrDelimiterMismatch,
			"delimiter_mismatch", "object value {value} is missing its ‹› delimiters",
			map[string]any{"value": raw})
	}
	return decodeObject(t, inner, strict)
}

// decodeArrayValue enforces the `«...»` delimiter pair before handing off
// to decodeArray.
func decodeArrayValue(t *Type, raw string, strict bool) (*Node, *FieldError) {
	if raw == "" {
		return nullNode(), nil
	}
	inner, ok := stripDelims(raw, ArrayStart, ArrayEnd)
	if !ok {
		return nil, NewFieldError(KindDelimiterMismatch, ErrDelimiterMismatch,
			"delimiter_mismatch", "array value {value} is missing its «» delimiters",
			map[string]any{"value": raw})
	}
	return decodeArray(t, inner, strict)
}

// stripDelims removes a matched leading open / trailing close rune pair,
// reporting false if either is absent.
func stripDelims(s string, open, close rune) (string, bool) {
	runes := []rune(s)
	if len(runes) < 2 || runes[0] != open || runes[len(runes)-1] != close {
		return "", false
	}
	return string(runes[1 : len(runes)-1]), true
}

// DecodeRow decodes one data line against schema into a row object Node.
// See spec §4.4.
func DecodeRow(schema *Type, rowText string, strict bool) (*Node, *FieldError) {
	return decodeObject(schema, rowText, strict)
}

// IsValidLineStruct reports whether text is a complete, strictly-decodable
// LineStruct document (spec §4.6).
func IsValidLineStruct(text string) bool {
	_, err := Decode(text, true)
	return err == nil
}

// ValidateAgainst checks text against an external schema, returning nil on
// success or a precise diagnostic otherwise (spec §4.6). It strictly
// decodes the document, parses its own schema line, and requires both
// decode and schema compatibility to succeed.
func ValidateAgainst(external *Type, text string) *string {
	lines := splitLines(text)
	if len(lines) < 2 {
		msg := ErrHeaderMissing.Error()
		return &msg
	}

	docSchema, err := ParseSchema(lines[1])
	if err != nil {
		msg := err.Error()
		return &msg
	}

	if err := CompatibleWith(docSchema, external); err != nil {
		msg := err.Error()
		return &msg
	}

	if _, err := Decode(text, true); err != nil {
		msg := err.Error()
		return &msg
	}

	return nil
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
