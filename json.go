package linestruct

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// jsonDocument is the wire shape of the Tree/JSON bridge (spec §6.2):
// `{"entityName": "...", "data": [...rows...]}`. Its Data elements are
// *Node, which carry their own order-preserving Marshal/Unmarshal.
type jsonDocument struct {
	EntityName string  `json:"entityName"`
	Data       []*Node `json:"data"`
}

func toJSONDocument(doc *Document) *jsonDocument {
	return &jsonDocument{EntityName: doc.EntityName, Data: doc.Rows}
}

func fromJSONDocument(jd *jsonDocument) *Document {
	return &Document{EntityName: jd.EntityName, Rows: jd.Data}
}

// ToJSON renders doc using a default Codec. See Codec.ToJSON.
func ToJSON(doc *Document) ([]byte, error) {
	return NewCodec().ToJSON(doc)
}

// FromJSON parses the bridge JSON shape using a default Codec. See
// Codec.FromJSON.
func FromJSON(data []byte) (*Document, error) {
	return NewCodec().FromJSON(data)
}

// MarshalJSON renders n as a JSON value, preserving object key order and
// the int/float/bool/string distinction recorded in Prim. Dates and
// datetimes have no JSON kind of their own and render as strings, per
// spec §4.5.1.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsNull() {
		return []byte("null"), nil
	}

	switch n.Kind {
	case NodePrimitive:
		switch n.Prim {
		case PrimInt, PrimFloat:
			if n.Str == "" {
				return []byte("null"), nil
			}
			return []byte(strings.TrimPrefix(n.Str, "+")), nil
		case PrimBool:
			return []byte(n.Str), nil
		default:
			return json.Marshal(n.Str)
		}

	case NodeArray:
		var b bytes.Buffer
		b.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			raw, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(raw)
		}
		b.WriteByte(']')
		return b.Bytes(), nil

	case NodeObject:
		var b bytes.Buffer
		b.WriteByte('{')
		first := true
		if n.Fields != nil {
			for pair := n.Fields.Oldest(); pair != nil; pair = pair.Next() {
				if !first {
					b.WriteByte(',')
				}
				first = false
				key, err := json.Marshal(pair.Key)
				if err != nil {
					return nil, err
				}
				b.Write(key)
				b.WriteByte(':')
				raw, err := pair.Value.MarshalJSON()
				if err != nil {
					return nil, err
				}
				b.Write(raw)
			}
		}
		b.WriteByte('}')
		return b.Bytes(), nil

	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON parses a JSON value into n, preserving object key order via
// a token-level walk rather than an intermediate map[string]any.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	parsed, err := nodeFromToken(dec, tok)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

func nodeFromToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case nil:
		return nullNode(), nil

	case bool:
		return &Node{Kind: NodePrimitive, Prim: PrimBool, Str: strconv.FormatBool(v)}, nil

	case json.Number:
		s := v.String()
		if strings.ContainsAny(s, ".eE") {
			return &Node{Kind: NodePrimitive, Prim: PrimFloat, Str: s}, nil
		}
		return &Node{Kind: NodePrimitive, Prim: PrimInt, Str: s}, nil

	case string:
		return &Node{Kind: NodePrimitive, Prim: PrimString, Str: v}, nil

	case json.Delim:
		switch v {
		case '[':
			var items []*Node
			for dec.More() {
				child, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return &Node{Kind: NodeArray, Items: items}, nil

		case '{':
			fields := orderedmap.New[string, *Node]()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)

				child, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				fields.Set(key, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return &Node{Kind: NodeObject, Fields: fields}, nil
		}
	}
	return nullNode(), nil
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return nodeFromToken(dec, tok)
}
