package linestruct

import (
	"fmt"

	"github.com/kaptinlin/jsonpointer"
)

// primitiveAliases maps alternate primitive spellings accepted only in a
// hand-authored external schema (never in a document's own schema line) to
// their canonical Kind. See spec §4.6.
var primitiveAliases = map[string]Kind{
	"integer": KindInt,
	"str":     KindString,
	"text":    KindString,
	"double":  KindFloat,
	"decimal": KindFloat,
	"boolean": KindBool,
}

// normalizePrimitiveName resolves an external-schema primitive spelling to
// its canonical Kind, honoring aliases.
func normalizePrimitiveName(name string) (Kind, bool) {
	if k, ok := primitiveKindByName[name]; ok {
		return k, true
	}
	if k, ok := primitiveAliases[name]; ok {
		return k, true
	}
	return 0, false
}

// CompatibleWith reports whether have (typically a schema inferred from or
// parsed out of a document) satisfies want (an externally supplied
// schema), per the compatibility rules in spec §5.2:
//
//   - Primitive kinds must match exactly (after alias normalization); no
//     widening or narrowing conversions are considered compatible.
//   - Enums are compatible when every alternative have can produce is also
//     allowed by want (want's alternative set is a superset of have's): an
//     external schema may permit values the document never happens to use,
//     but must accept everything the document does produce.
//   - Arrays are compatible when their element types are compatible.
//   - Objects are compatible when every field want requires is present in
//     have under the exact same name, is itself compatible, and is not
//     optional in have unless also optional in want.
//
// The returned error, when non-nil, is a ready-to-render
// ExternalSchemaMismatch FieldError identifying the first incompatibility
// found.
func CompatibleWith(have, want *Type) *FieldError {
	return compatCheck(have, want, nil)
}

// compatCheck walks have/want in lockstep, accumulating a JSON-Pointer-
// style path (rendered via jsonpointer.Format) identifying where the first
// incompatibility was found.
func compatCheck(have, want *Type, path []string) *FieldError {
	if want == nil {
		return nil
	}
	if have == nil {
		return mismatch(path, "field is absent from the document schema")
	}

	if want.Kind.IsPrimitive() {
		if !have.Kind.IsPrimitive() || have.Kind != want.Kind {
			return mismatch(path, fmt.Sprintf("expected %s, got %s", want.Kind, have.Kind))
		}
		return nil
	}

	switch want.Kind {
	case KindEnum:
		if have.Kind != KindEnum {
			return mismatch(path, "expected enum, got "+have.Kind.String())
		}
		wantValues := make(map[string]bool, len(want.Enum))
		for _, v := range want.Enum {
			wantValues[v] = true
		}
		for _, v := range have.Enum {
			if !wantValues[v] {
				return mismatch(path, fmt.Sprintf("enum alternative %q produced by the document is not allowed externally", v))
			}
		}
		return nil

	case KindArray:
		if have.Kind != KindArray {
			return mismatch(path, "expected array, got "+have.Kind.String())
		}
		return compatCheck(have.Elem, want.Elem, appendPath(path, "[]"))

	case KindObject:
		if have.Kind != KindObject {
			return mismatch(path, "expected object, got "+have.Kind.String())
		}
		for _, wf := range want.Fields {
			fieldPath := appendPath(path, wf.Name)
			hf := have.FieldByName(wf.Name)
			if hf == nil {
				if wf.Optional {
					continue
				}
				return mismatch(fieldPath, "required field is missing from the document schema")
			}
			if !wf.Optional && hf.Optional {
				return mismatch(fieldPath, "field is optional in the document but required externally")
			}
			if err := compatCheck(hf.Type, wf.Type, fieldPath); err != nil {
				return err
			}
		}
		return nil

	default:
		return mismatch(path, "unrecognized external schema node")
	}
}

// appendPath returns a new path with seg appended, never sharing a backing
// array with path, so sibling recursive calls can extend the same prefix
// independently.
func appendPath(path []string, seg string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = seg
	return out
}

func mismatch(path []string, detail string) *FieldError {
	fe := NewFieldError(KindExternalSchemaMismatch, ErrExternalSchemaMismatch,
		"external_schema_mismatch", "{detail}", map[string]any{"detail": detail})
	if len(path) > 0 {
		fe = fe.WithField(jsonpointer.Format(path...))
	}
	return fe
}
