package linestruct

// Kind identifies the shape of a Type node. See spec §3.2.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDateTime
	KindEnum
	KindArray
	KindObject
)

// String renders the primitive spelling used in a schema line for the
// primitive kinds; composite kinds return a descriptive label only useful
// for diagnostics, never for serialization (composites are rendered by their
// own grammar productions, not by name).
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether k is one of the scalar primitive kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindBool, KindDate, KindDateTime:
		return true
	default:
		return false
	}
}

// primitiveKindByName maps a schema-line primitive spelling to its Kind.
var primitiveKindByName = map[string]Kind{
	"string":   KindString,
	"int":      KindInt,
	"float":    KindFloat,
	"bool":     KindBool,
	"date":     KindDate,
	"datetime": KindDateTime,
}

// Type is a node of the schema AST: a Primitive, Enum, Array, or Object. See
// spec §3.2. A Type is immutable once parsed.
type Type struct {
	Kind Kind

	// Enum holds the ordered, non-empty set of alternatives when Kind ==
	// KindEnum.
	Enum []string

	// Elem holds the element type when Kind == KindArray.
	Elem *Type

	// Fields holds the ordered, named field list when Kind == KindObject.
	Fields []*Field
}

// FieldCount returns the number of declared fields for an Object Type, or 0
// otherwise.
func (t *Type) FieldCount() int {
	if t == nil || t.Kind != KindObject {
		return 0
	}
	return len(t.Fields)
}

// FieldByName returns the Field with the given name, or nil if none exists.
func (t *Type) FieldByName(name string) *Field {
	if t == nil {
		return nil
	}
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}
