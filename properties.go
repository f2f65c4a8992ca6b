package linestruct

import orderedmap "github.com/wk8/go-ordered-map/v2"

// decodeObject decodes the inner text of a `‹...›` object value (brackets
// already stripped) against an Object Type, field by field, in declared
// order (spec §4.4, Object value).
func decodeObject(t *Type, inner string, strict bool) (*Node, *FieldError) {
	parts := splitFields(inner, ObjectFields)

	fields := orderedmap.New[string, *Node]()
	for i, f := range t.Fields {
		var raw string
		present := i < len(parts)
		if present {
			raw = parts[i]
		}

		value, ferr := resolveFieldSlot(f, raw, present)
		if ferr != nil {
			if strict {
				return nil, ferr
			}
			fields.Set(f.Name, tolerantFallback(f.Type))
			continue
		}
		if value == "" {
			fields.Set(f.Name, nullNode())
			continue
		}

		child, cerr := decodeValue(f.Type, value, strict)
		if cerr != nil {
			return nil, cerr.WithField(f.Name)
		}
		fields.Set(f.Name, child)
	}

	if len(parts) > len(t.Fields) {
		return nil, NewFieldError(KindRowOverflow, ErrRowOverflow,
			"row_overflow", "object has {got} fields, schema declares {want}",
			map[string]any{"got": len(parts), "want": len(t.Fields)})
	}

	return &Node{Kind: NodeObject, Fields: fields}, nil
}

// renderObject renders an Object Node back into the inner text of a
// `‹...›` value, in the Type's declared field order. Children render
// themselves fully escaped (or, for array/object, with their own
// structural delimiters); no further escaping is applied here.
func renderObject(t *Type, n *Node) (string, *FieldError) {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		child, ok := n.Fields.Get(f.Name)
		if !ok || child.IsNull() {
			parts[i] = ""
			continue
		}
		rendered, err := encodeValue(f.Type, child)
		if err != nil {
			return "", err.WithField(f.Name)
		}
		parts[i] = rendered
	}
	return joinFields(parts), nil
}
