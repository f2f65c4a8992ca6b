package linestruct

// resolveFieldSlot applies the field-slot presence rule (spec §4.4, "Field
// slot"): raw is the value text captured for f, or "" when the row ran out
// of fields before reaching this slot. An empty optional slot decodes to a
// nil value with no error; an empty required slot is a RowUnderflow.
func resolveFieldSlot(f *Field, raw string, present bool) (string, *FieldError) {
	if present && raw != "" {
		return raw, nil
	}
	if f.Optional {
		return "", nil
	}
	return "", NewFieldError(KindRowUnderflow, ErrRowUnderflow,
		"row_underflow", "missing required field {field}",
		map[string]any{"field": f.Name}).WithField(f.Name)
}

// tolerantFallback is the tolerant-decode substitute for a required field
// whose slot was missing or empty (spec §9 Open Questions): primitives
// coerce to their zero value, composites fall back to null since they
// have no natural zero form.
func tolerantFallback(t *Type) *Node {
	if t.Kind.IsPrimitive() {
		return zeroValueNode(t.Kind)
	}
	return nullNode()
}

