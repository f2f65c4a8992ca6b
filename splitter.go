package linestruct

// splitMode selects how the Field Splitter treats the top-level delimiter of
// the region it is scanning. See spec §4.2.
type splitMode int

const (
	// RowFields splits a data row (or the inside of an object/array of
	// primitives) on FieldDelim at depth 0.
	RowFields splitMode = iota
	// ObjectFields splits the inside of an already-unwrapped ‹...› object
	// value on FieldDelim at depth 0.
	ObjectFields
	// ArrayOfPrimitives splits the inside of an already-unwrapped «...»
	// array of scalar/enum values on FieldDelim at depth 0.
	ArrayOfPrimitives
	// ArrayOfObjects splits the inside of an already-unwrapped «...» array
	// whose elements are ‹...› objects: segments begin at ‹ and end at the
	// matching ›, with a FieldDelim immediately after › as the separator.
	ArrayOfObjects
	// ArrayOfArrays is the «...»-nested analog of ArrayOfObjects.
	ArrayOfArrays
)

// splitFields splits s into its ordered top-level substrings per mode, in a
// single left-to-right pass that tracks nesting depth and escape state. It
// never unescapes; callers unescape scalar leaves themselves. A final
// segment is always emitted, even if empty, so trailing empty optional
// fields are preserved.
func splitFields(s string, mode splitMode) []string {
	runes := []rune(s)
	var segments []string
	var cur []rune
	depth := 0
	escaped := false

	switch mode {
	case ArrayOfObjects:
		return splitWrapped(runes, ObjectStart, ObjectEnd)
	case ArrayOfArrays:
		return splitWrapped(runes, ArrayStart, ArrayEnd)
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if escaped {
			cur = append(cur, r)
			escaped = false
			continue
		}

		switch r {
		case Escape:
			cur = append(cur, r)
			escaped = true
			continue
		case ObjectStart, ArrayStart:
			depth++
		case ObjectEnd, ArrayEnd:
			depth--
		case FieldDelim:
			if depth == 0 {
				segments = append(segments, string(cur))
				cur = cur[:0]
				continue
			}
		}
		cur = append(cur, r)
	}
	segments = append(segments, string(cur))
	return segments
}

// splitWrapped implements ArrayOfObjects/ArrayOfArrays: each element is
// delimited by open/close rather than by FieldDelim, and a FieldDelim
// immediately following a close is the inter-element separator.
func splitWrapped(runes []rune, open, close rune) []string {
	var segments []string
	i := 0
	n := len(runes)

	// Callers pass the already-trimmed array interior, so the interior
	// either starts at `open` or is empty; any FieldDelim found where an
	// element should start is skipped.
	for i < n {
		if runes[i] == FieldDelim {
			// Defensive: shouldn't happen at a well-formed boundary, but
			// keep the scan total rather than panicking on malformed input.
			i++
			continue
		}

		start := i
		depth := 0
		escaped := false
	scanElement:
		for ; i < n; i++ {
			r := runes[i]
			if escaped {
				escaped = false
				continue
			}
			switch r {
			case Escape:
				escaped = true
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					i++
					break scanElement
				}
			}
		}
		segments = append(segments, string(runes[start:i]))

		// Skip the separator FieldDelim between elements, if present.
		if i < n && runes[i] == FieldDelim {
			i++
		}
	}

	return segments
}
