package linestruct

import "strings"

const schemaPrefix = "schema:"

// ParseSchema parses a full "schema:" line into its Type AST, a root
// Object whose fields are the row's columns. See spec §4.3.
func ParseSchema(line string) (*Type, *FieldError) {
	if !strings.HasPrefix(line, schemaPrefix) {
		return nil, NewFieldError(KindHeaderMissing, ErrHeaderMissing,
			"header_missing", `schema line must start with "schema:"`, nil)
	}
	body := line[len(schemaPrefix):]
	p := &schemaParser{runes: []rune(body)}
	return parseFieldListRoot(p)
}

// ParseExternalSchema parses a bare field list (no "schema:" prefix
// required) supplied by a caller as a compatibility target, accepting the
// external-schema-only primitive aliases (spec §4.6): "integer" for int,
// "str"/"text" for string, "double"/"decimal" for float, "boolean" for
// bool. A document's own schema line never accepts these spellings; only
// ValidateAgainst's external schema does.
func ParseExternalSchema(fieldList string) (*Type, *FieldError) {
	p := &schemaParser{runes: []rune(fieldList), aliases: true}
	return parseFieldListRoot(p)
}

func parseFieldListRoot(p *schemaParser) (*Type, *FieldError) {
	fields, err := p.parseFieldList(0, false)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.runes) {
		return nil, p.errorAt("unexpected trailing content after field list")
	}
	return &Type{Kind: KindObject, Fields: fields}, nil
}

// schemaParser is a single left-to-right recursive-descent parser over a
// field list, per the §4.3 grammar. aliases enables the external-schema
// primitive aliases understood only by ParseExternalSchema.
type schemaParser struct {
	runes   []rune
	pos     int
	aliases bool
}

func (p *schemaParser) errorAt(detail string) *FieldError {
	return p.errorAtErr(ErrSchemaSyntax, detail)
}

// errorAtErr is errorAt with an explicit sentinel, for syntax failures that
// have a more specific cause than a generic schema syntax error (an
// unclosed bracket, a stray closing bracket).
func (p *schemaParser) errorAtErr(err error, detail string) *FieldError {
	return NewFieldError(KindSchemaSyntax, err, "schema_syntax",
		"{detail} (at character {pos})", map[string]any{"detail": detail, "pos": p.pos})
}

// isCloserRune reports whether r is one of the three structural closing
// runes, so a stray occurrence can be reported as ErrUnmatchedCloser
// instead of the generic "expected an identifier".
func isCloserRune(r rune) bool {
	return r == ObjectEnd || r == ArrayEnd || r == '}'
}

func (p *schemaParser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *schemaParser) hasPrefix(s string) bool {
	rs := []rune(s)
	if p.pos+len(rs) > len(p.runes) {
		return false
	}
	for i, r := range rs {
		if p.runes[p.pos+i] != r {
			return false
		}
	}
	return true
}

// parseFieldList parses Field ("¦" Field)*, stopping at end of input when
// hasStop is false, or just before the stop rune when hasStop is true
// (used when parsing the field list nested inside an Object type).
func (p *schemaParser) parseFieldList(stop rune, hasStop bool) ([]*Field, *FieldError) {
	var fields []*Field
	seen := make(map[string]bool)

	for {
		if r, ok := p.peek(); !ok || (hasStop && r == stop) {
			break
		}

		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, NewFieldError(KindSchemaSyntax, ErrDuplicateField,
				"duplicate_field", "duplicate field name {field}",
				map[string]any{"field": f.Name}).WithField(f.Name)
		}
		seen[f.Name] = true
		fields = append(fields, f)

		if r, ok := p.peek(); ok && r == FieldDelim {
			p.pos++
			continue
		}
		break
	}
	return fields, nil
}

// parseField parses Ident ":" Type ("@desc=\"" DescChars "\"")?
func (p *schemaParser) parseField() (*Field, *FieldError) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if r, ok := p.peek(); !ok || r != ':' {
		return nil, p.errorAt("expected ':' after field name " + name)
	}
	p.pos++

	typ, optional, err := p.parseType()
	if err != nil {
		return nil, err
	}
	f := &Field{Name: name, Type: typ, Optional: optional}

	if p.hasPrefix(`@desc="`) {
		p.pos += len([]rune(`@desc="`))
		desc, err := p.parseDescChars()
		if err != nil {
			return nil, err
		}
		f.Description = desc
		f.HasDesc = true
	}
	return f, nil
}

// parseType parses Optional | Array | Object | Enum | Primitive, handling
// both accepted optional spellings: "<InnerType>?" and "InnerType?".
func (p *schemaParser) parseType() (*Type, bool, *FieldError) {
	wrapped := false
	if r, ok := p.peek(); ok && r == '<' {
		wrapped = true
		p.pos++
	}

	inner, err := p.parseInnerType()
	if err != nil {
		return nil, false, err
	}

	if wrapped {
		if r, ok := p.peek(); !ok || r != '>' {
			return nil, false, p.errorAt("expected '>' to close optional wrapper")
		}
		p.pos++
	}

	optional := false
	if r, ok := p.peek(); ok && r == '?' {
		optional = true
		p.pos++
	} else if wrapped {
		return nil, false, p.errorAt("expected '?' after '<...>'")
	}

	return inner, optional, nil
}

// parseInnerType parses Array | Object | Enum | Primitive.
func (p *schemaParser) parseInnerType() (*Type, *FieldError) {
	r, ok := p.peek()
	if !ok {
		return nil, p.errorAt("expected a type")
	}

	switch r {
	case ArrayStart:
		p.pos++
		elem, _, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if r, ok := p.peek(); !ok || r != ArrayEnd {
			return nil, p.errorAtErr(ErrUnterminatedBracket, "unterminated array type")
		}
		p.pos++
		return &Type{Kind: KindArray, Elem: elem}, nil

	case ObjectStart:
		p.pos++
		fields, err := p.parseFieldList(ObjectEnd, true)
		if err != nil {
			return nil, err
		}
		if r, ok := p.peek(); !ok || r != ObjectEnd {
			return nil, p.errorAtErr(ErrUnterminatedBracket, "unterminated object type")
		}
		p.pos++
		if len(fields) == 0 {
			return nil, NewFieldError(KindSchemaSyntax, ErrEmptyObject,
				"empty_object", "object type declares no fields", nil)
		}
		return &Type{Kind: KindObject, Fields: fields}, nil

	case '{':
		p.pos++
		vals, err := p.parseEnumVals()
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			return nil, NewFieldError(KindSchemaSyntax, ErrEmptyEnum,
				"empty_enum", "enum type declares no alternatives", nil)
		}
		return &Type{Kind: KindEnum, Enum: vals}, nil

	default:
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		kind, ok := primitiveKindByName[name]
		if !ok && p.aliases {
			kind, ok = normalizePrimitiveName(name)
		}
		if !ok {
			return nil, NewFieldError(KindSchemaSyntax, ErrUnknownPrimitive,
				"unknown_primitive", "unknown primitive type {name}",
				map[string]any{"name": name})
		}
		return &Type{Kind: kind}, nil
	}
}

// parseEnumVals parses EnumVal ("|" EnumVal)* up to and including the
// closing "}", unescaping "⁊|" into a literal "|" as it scans. A bare "{}"
// yields no alternatives, which the caller rejects as an empty enum.
func (p *schemaParser) parseEnumVals() ([]string, *FieldError) {
	var vals []string
	var cur []rune
	seen := make(map[string]bool)

	emit := func() *FieldError {
		v := string(cur)
		if seen[v] {
			return NewFieldError(KindSchemaSyntax, ErrDuplicateEnumValue,
				"duplicate_enum_value", "duplicate enum value {value}",
				map[string]any{"value": v})
		}
		seen[v] = true
		vals = append(vals, v)
		cur = cur[:0]
		return nil
	}

	for {
		r, ok := p.peek()
		if !ok {
			return nil, p.errorAtErr(ErrUnterminatedBracket, "unterminated enum")
		}
		switch {
		case r == Escape:
			p.pos++
			if r2, ok2 := p.peek(); ok2 {
				cur = append(cur, r2)
				p.pos++
			} else {
				cur = append(cur, Escape)
			}
		case r == '|':
			p.pos++
			if err := emit(); err != nil {
				return nil, err
			}
		case r == '}':
			p.pos++
			if len(vals) == 0 && len(cur) == 0 {
				return vals, nil
			}
			if err := emit(); err != nil {
				return nil, err
			}
			return vals, nil
		default:
			cur = append(cur, r)
			p.pos++
		}
	}
}

// parseDescChars parses the contents of an @desc="..." annotation up to
// the closing quote.
func (p *schemaParser) parseDescChars() (string, *FieldError) {
	var cur []rune
	for {
		r, ok := p.peek()
		if !ok {
			return "", p.errorAt("unterminated description")
		}
		if r == Escape {
			p.pos++
			if r2, ok2 := p.peek(); ok2 {
				cur = append(cur, r2)
				p.pos++
			} else {
				cur = append(cur, Escape)
			}
			continue
		}
		if r == '"' {
			p.pos++
			return string(cur), nil
		}
		cur = append(cur, r)
		p.pos++
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func (p *schemaParser) parseIdent() (string, *FieldError) {
	start := p.pos
	if r, ok := p.peek(); !ok || !isIdentStart(r) {
		if ok && isCloserRune(r) {
			return "", p.errorAtErr(ErrUnmatchedCloser, "unexpected closing bracket "+string(r))
		}
		return "", p.errorAt("expected an identifier")
	}
	p.pos++
	for {
		r, ok := p.peek()
		if !ok || !isIdentCont(r) {
			break
		}
		p.pos++
	}
	return string(p.runes[start:p.pos]), nil
}

// RenderSchemaLine serializes an Object Type back into a "schema:" line.
// It emits the short optional spelling (name:T?) for primitive/enum
// fields and the long spelling (name:<T>?) for array/object fields, per
// spec §4.3.
func RenderSchemaLine(root *Type) string {
	return schemaPrefix + renderFieldList(root.Fields)
}

func renderFieldList(fields []*Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = renderField(f)
	}
	return strings.Join(parts, string(FieldDelim))
}

func renderField(f *Field) string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte(':')
	b.WriteString(renderFieldType(f.Type, f.Optional))
	if f.HasDesc {
		b.WriteString(`@desc="`)
		b.WriteString(strings.ReplaceAll(f.Description, `"`, string(Escape)+`"`))
		b.WriteByte('"')
	}
	return b.String()
}

func renderFieldType(t *Type, optional bool) string {
	inner := renderInnerType(t)
	if !optional {
		return inner
	}
	if t.Kind == KindArray || t.Kind == KindObject {
		return "<" + inner + ">?"
	}
	return inner + "?"
}

func renderInnerType(t *Type) string {
	switch t.Kind {
	case KindArray:
		return string(ArrayStart) + renderFieldType(t.Elem, false) + string(ArrayEnd)
	case KindObject:
		return string(ObjectStart) + renderFieldList(t.Fields) + string(ObjectEnd)
	case KindEnum:
		escaped := make([]string, len(t.Enum))
		for i, v := range t.Enum {
			escaped[i] = strings.ReplaceAll(v, "|", string(Escape)+"|")
		}
		return "{" + strings.Join(escaped, "|") + "}"
	default:
		return t.Kind.String()
	}
}
