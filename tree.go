package linestruct

import orderedmap "github.com/wk8/go-ordered-map/v2"

// NodeKind identifies the shape of a Tree value. A Tree mirrors JSON's
// value model: null, primitive scalar, ordered mapping, ordered sequence.
// See spec §3.3.
type NodeKind int

const (
	NodeNull NodeKind = iota
	NodePrimitive
	NodeArray
	NodeObject
)

// PrimKind records which JSON leaf type a NodePrimitive came from (or
// should render as), since date/datetime/enum values share Go's string
// representation but still need to cross the JSON bridge as the right
// kind of literal. See spec §4.5.1: "Dates/datetimes are indistinguishable
// from strings in the Tree and are emitted as string."
type PrimKind int

const (
	PrimString PrimKind = iota
	PrimInt
	PrimFloat
	PrimBool
)

// Node is one value in the language-neutral tree model. Only the field
// matching Kind is meaningful; the others are zero. Primitive leaves keep
// their original lexical text (post-unescape) rather than a parsed Go
// value, per spec §3.2's "stored as their original string form".
type Node struct {
	Kind   NodeKind
	Prim   PrimKind
	Str    string
	Items  []*Node
	Fields *orderedmap.OrderedMap[string, *Node]
}

// nullNode returns the shared representation of an absent/null value.
func nullNode() *Node {
	return &Node{Kind: NodeNull}
}

// StringNode builds a string primitive leaf from already-unescaped text.
func StringNode(s string) *Node {
	return &Node{Kind: NodePrimitive, Prim: PrimString, Str: s}
}

// primKindForType maps a primitive schema Kind to the Tree leaf kind used
// for JSON export.
func primKindForType(k Kind) PrimKind {
	switch k {
	case KindInt:
		return PrimInt
	case KindFloat:
		return PrimFloat
	case KindBool:
		return PrimBool
	default:
		return PrimString
	}
}

// IsNull reports whether n is nil or an explicit null node.
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == NodeNull
}

// Document is one decoded LineStruct document: an entity name plus an
// ordered sequence of row objects. See spec §3.3.
type Document struct {
	EntityName string
	Rows       []*Node
}
