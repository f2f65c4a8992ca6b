package linestruct

import "strconv"

// arraySplitMode picks the splitter mode matching an array's element Type,
// per the §4.3 grammar: arrays of primitives, objects, or arrays each use
// a distinct split strategy.
func arraySplitMode(elem *Type) splitMode {
	switch {
	case elem.Kind == KindObject:
		return ArrayOfObjects
	case elem.Kind == KindArray:
		return ArrayOfArrays
	default:
		return ArrayOfPrimitives
	}
}

// decodeArray decodes the inner text of a `«...»` array value (brackets
// already stripped) against an Array Type's element type.
func decodeArray(t *Type, inner string, strict bool) (*Node, *FieldError) {
	if inner == "" {
		return &Node{Kind: NodeArray}, nil
	}

	parts := splitFields(inner, arraySplitMode(t.Elem))
	items := make([]*Node, 0, len(parts))
	for i, raw := range parts {
		child, err := decodeValue(t.Elem, raw, strict)
		if err != nil {
			return nil, err.WithField("[" + strconv.Itoa(i) + "]")
		}
		items = append(items, child)
	}
	return &Node{Kind: NodeArray, Items: items}, nil
}

// renderArray renders an Array Node back into the inner text of a
// `«...»` value. Children render themselves fully escaped (or, for
// nested arrays/objects, with their own structural delimiters); no
// further escaping is applied here.
func renderArray(t *Type, n *Node) (string, *FieldError) {
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		rendered, err := encodeValue(t.Elem, item)
		if err != nil {
			return "", err.WithField("[" + strconv.Itoa(i) + "]")
		}
		parts[i] = rendered
	}
	return joinFields(parts), nil
}
