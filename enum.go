package linestruct

import "strings"

// enumMember reports whether value is one of t.Enum's literal alternatives.
func enumMember(t *Type, value string) bool {
	for _, alt := range t.Enum {
		if alt == value {
			return true
		}
	}
	return false
}

// decodeEnum decodes a raw enum value, rejecting anything not declared in
// the Type's alternative set (spec §4.4, Enum value).
func decodeEnum(t *Type, raw string) (*Node, *FieldError) {
	if !enumMember(t, raw) {
		return nil, NewFieldError(KindValueSyntax, ErrValueSyntax,
			"enum_mismatch", "value {value} is not one of {alternatives}",
			map[string]any{"value": raw, "alternatives": strings.Join(t.Enum, "|")})
	}
	return &Node{Kind: NodePrimitive, Prim: PrimString, Str: raw}, nil
}

// renderEnum renders an enum Node back to its literal text. An enum value
// may contain `|` (declared as `⁊|` in the schema); the caller's
// field-level Escape covers it, so no further escaping is applied here.
func renderEnum(n *Node) (string, *FieldError) {
	return n.Str, nil
}
