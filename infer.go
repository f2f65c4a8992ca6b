package linestruct

// InferSchema derives an Object Type describing rows, for encoding Tree
// data that was never decoded from a schema-carrying document (spec
// §4.5.1). Field order is the order fields first appear across rows, with
// fields first seen in a later row appended after all fields seen earlier.
// A field is optional if any row omits it or carries it as null; its type
// comes from the first non-null value seen for it, with dates/datetimes
// indistinguishable from plain strings in the Tree.
func InferSchema(rows []*Node) *Type {
	var order []string
	seen := make(map[string]bool)
	present := make(map[string]int)
	nonNull := make(map[string]int)
	sample := make(map[string]*Node)
	arraySample := make(map[string]*Node)

	for _, row := range rows {
		if row == nil || row.Fields == nil {
			continue
		}
		for pair := row.Fields.Oldest(); pair != nil; pair = pair.Next() {
			name := pair.Key
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
			present[name]++
			if !pair.Value.IsNull() {
				nonNull[name]++
				if _, ok := sample[name]; !ok {
					sample[name] = pair.Value
				}
				if pair.Value.Kind == NodeArray && arraySample[name] == nil && len(pair.Value.Items) > 0 {
					arraySample[name] = pair.Value
				}
			}
		}
	}

	fields := make([]*Field, 0, len(order))
	for _, name := range order {
		optional := present[name] < len(rows) || nonNull[name] < present[name]
		fields = append(fields, &Field{
			Name:     name,
			Type:     inferFieldType(sample[name], arraySample[name]),
			Optional: optional,
		})
	}

	return &Type{Kind: KindObject, Fields: fields}
}

// inferFieldType derives a top-level field's Type from its first non-null
// sample across rows. For an array-kind field, element type inference
// prefers arraySample — the first non-empty array seen for this field
// across all rows — over sample itself, since the row that first carried a
// non-null value for the field may have carried an empty array. If every
// row's array for this field was empty, arraySample is nil and element
// type falls back through sample as before.
func inferFieldType(sample, arraySample *Node) *Type {
	if sample != nil && sample.Kind == NodeArray {
		elemSrc := sample
		if arraySample != nil {
			elemSrc = arraySample
		}
		return &Type{Kind: KindArray, Elem: inferType(firstNonNull(elemSrc.Items))}
	}
	return inferType(sample)
}

// inferType derives a Type from a single sample value. A nil sample (every
// row held this field null or absent) falls back to string, the type with
// the least lossy round-trip for data we never actually observed.
func inferType(n *Node) *Type {
	if n == nil {
		return &Type{Kind: KindString}
	}

	switch n.Kind {
	case NodePrimitive:
		switch n.Prim {
		case PrimInt:
			return &Type{Kind: KindInt}
		case PrimFloat:
			return &Type{Kind: KindFloat}
		case PrimBool:
			return &Type{Kind: KindBool}
		default:
			return &Type{Kind: KindString}
		}

	case NodeArray:
		return &Type{Kind: KindArray, Elem: inferType(firstNonNull(n.Items))}

	case NodeObject:
		return inferObjectType(n)

	default:
		return &Type{Kind: KindString}
	}
}

// inferObjectType infers a nested object's fields from a single sample
// object, in its own key order. Optionality is not unioned across rows
// below the top level: a nested field is declared optional only when this
// one sample observed it as null at that exact path.
func inferObjectType(n *Node) *Type {
	var fields []*Field
	if n.Fields != nil {
		for pair := n.Fields.Oldest(); pair != nil; pair = pair.Next() {
			fields = append(fields, &Field{
				Name:     pair.Key,
				Type:     inferType(pair.Value),
				Optional: pair.Value.IsNull(),
			})
		}
	}
	return &Type{Kind: KindObject, Fields: fields}
}

// firstNonNull returns the first non-null item in items, or nil if items is
// empty or every element is null.
func firstNonNull(items []*Node) *Node {
	for _, it := range items {
		if !it.IsNull() {
			return it
		}
	}
	return nil
}
