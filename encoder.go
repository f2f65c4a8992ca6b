package linestruct

import "strings"

// encodeValue renders a single Tree Node against its declared Type into the
// text that occupies one field slot. Object and Array values get their own
// structural delimiters written literally; only scalar leaves (primitive,
// enum) are escaped, since escaping a delimiter that is already structural
// would make it unparseable on the way back in. See spec §4.1, §4.5.2.
func encodeValue(t *Type, n *Node) (string, *FieldError) {
	if n.IsNull() {
		return "", nil
	}

	switch t.Kind {
	case KindObject:
		inner, err := renderObject(t, n)
		if err != nil {
			return "", err
		}
		return string(ObjectStart) + inner + string(ObjectEnd), nil

	case KindArray:
		inner, err := renderArray(t, n)
		if err != nil {
			return "", err
		}
		return string(ArrayStart) + inner + string(ArrayEnd), nil

	case KindEnum:
		s, err := renderEnum(n)
		if err != nil {
			return "", err
		}
		return Escape(s), nil

	default:
		return Escape(n.Str), nil
	}
}

// renderRow renders one row Node against schema's fields, in order, then
// applies trailing-optional trimming (spec §4.5.2): everything strictly
// after the last field that is non-empty or required is dropped, so a row
// of all-optional, all-null trailing fields never grows the line for no
// reason. A required field is never trimmed away, even when empty.
func renderRow(schema *Type, row *Node) (string, *FieldError) {
	parts := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		child, ok := row.Fields.Get(f.Name)
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

	last := -1
	for i, f := range schema.Fields {
		if parts[i] != "" || !f.Optional {
			last = i
		}
	}
	return joinFields(parts[:last+1]), nil
}

// Encode renders a Document into LineStruct text: the EntityName and schema
// header lines followed by one rendered line per row. The schema is
// inferred from doc.Rows (spec §4.5.1); Encode never trusts a caller-
// supplied schema, since the Tree model carries no schema of its own.
func Encode(doc *Document) (string, *FieldError) {
	schema := InferSchema(doc.Rows)

	var b strings.Builder
	b.WriteString(entityPrefix)
	b.WriteString(doc.EntityName)
	b.WriteByte('\n')
	b.WriteString(RenderSchemaLine(schema))

	for _, row := range doc.Rows {
		line, err := renderRow(schema, row)
		if err != nil {
			return "", err
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String(), nil
}
