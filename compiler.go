package linestruct

import (
	"strings"

	"github.com/goccy/go-json"
)

// Codec configures how documents are decoded, sampled, and bridged to JSON.
// It is a fluent builder in the same spirit as the teacher's schema
// compiler: build one Codec with the options a caller wants, then reuse it
// across many documents instead of re-specifying strictness and JSON
// plumbing every call.
type Codec struct {
	strict     bool
	sampleSize int

	jsonEncoder func(v any) ([]byte, error)
	jsonDecoder func(data []byte, v any) error
}

// NewCodec returns a Codec with tolerant (skip-row) decoding, a 3-row sample
// size, and the goccy/go-json JSON bridge.
func NewCodec() *Codec {
	return &Codec{
		strict:      false,
		sampleSize:  defaultSampleSize,
		jsonEncoder: func(v any) ([]byte, error) { return json.Marshal(v) },
		jsonDecoder: func(data []byte, v any) error { return json.Unmarshal(data, v) },
	}
}

// WithStrict toggles strict (fail-fast) vs tolerant (skip-row) row
// decoding. See spec §4.4.2.
func (c *Codec) WithStrict(strict bool) *Codec {
	c.strict = strict
	return c
}

// WithSampleSize sets how many rows, and how many elements of each nested
// array, Sample keeps. See spec §4.7.
func (c *Codec) WithSampleSize(n int) *Codec {
	c.sampleSize = n
	return c
}

// WithEncoderJSON configures a custom JSON encoder implementation.
func (c *Codec) WithEncoderJSON(encoder func(v any) ([]byte, error)) *Codec {
	c.jsonEncoder = encoder
	return c
}

// WithDecoderJSON configures a custom JSON decoder implementation.
func (c *Codec) WithDecoderJSON(decoder func(data []byte, v any) error) *Codec {
	c.jsonDecoder = decoder
	return c
}

// Decode parses text into a Document using the Codec's strict setting
// (configured via WithStrict, tolerant by default).
func (c *Codec) Decode(text string) (*Document, *FieldError) {
	return Decode(text, c.strict)
}

// DecodeStrict parses text in strict mode regardless of the Codec's
// WithStrict setting: the first malformed row aborts the whole decode. It
// is the explicit counterpart to Decode's tolerant-or-strict dispatch, for
// callers that always want fail-fast semantics irrespective of how the
// Codec was configured.
func (c *Codec) DecodeStrict(text string) (*Document, *FieldError) {
	return Decode(text, true)
}

// Sample decodes text tolerantly and truncates the result to the Codec's
// sample size. See spec §4.7.
func (c *Codec) Sample(text string) (*Document, *FieldError) {
	doc, err := Decode(text, false)
	if err != nil {
		return nil, err
	}
	return SampleDocument(doc, c.sampleSize), nil
}

// ToJSON renders doc as the `{"entityName": ..., "data": [...]}` JSON
// bridge shape. See spec §6.2.
func (c *Codec) ToJSON(doc *Document) ([]byte, error) {
	return c.jsonEncoder(toJSONDocument(doc))
}

// FromJSON parses the bridge JSON shape back into a Document, inferring a
// schema from the decoded rows. See spec §6.2.
func (c *Codec) FromJSON(data []byte) (*Document, error) {
	var jd jsonDocument
	if err := c.jsonDecoder(data, &jd); err != nil {
		return nil, &jsonDecodeError{cause: err}
	}
	return fromJSONDocument(&jd), nil
}

// defaultSampleSize is the default row count kept by Sample / SampleDocument.
const defaultSampleSize = 3

// Decode parses LineStruct text into a Document: an EntityName header
// line, a schema line, then zero or more data rows. In strict mode the
// first row error aborts the whole decode; in tolerant mode offending rows
// are skipped and decoding continues. See spec §4.4.2, §6.1.
func Decode(text string, strict bool) (*Document, *FieldError) {
	if strings.TrimSpace(text) == "" {
		return nil, NewFieldError(KindEmptyInput, ErrEmptyInput,
			"empty_input", "input is empty", nil)
	}

	lines := splitLines(text)
	for i, l := range lines {
		lines[i] = trimCR(l)
	}

	if !strings.HasPrefix(lines[0], entityPrefix) {
		return nil, NewFieldError(KindHeaderMissing, ErrHeaderMissing,
			"header_missing", `first line must start with "EntityName:"`, nil).WithLine(1)
	}
	if len(lines) < 2 {
		return nil, NewFieldError(KindHeaderMissing, ErrHeaderMissing,
			"header_missing", "schema line is missing", nil).WithLine(2)
	}

	entityName := strings.TrimPrefix(lines[0], entityPrefix)

	schema, serr := ParseSchema(lines[1])
	if serr != nil {
		return nil, serr.WithLine(2)
	}

	doc := &Document{EntityName: entityName}

	for i := 2; i < len(lines); i++ {
		line := lines[i]
		if i == len(lines)-1 && line == "" {
			// Trailing newline after the last data row yields one synthetic
			// empty final line; it is not itself a row.
			continue
		}

		row, rerr := DecodeRow(schema, line, strict)
		if rerr != nil {
			if strict {
				return nil, rerr.WithLine(i + 1)
			}
			continue
		}
		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}

// jsonDecodeError adapts a JSON bridge decoding failure to *FieldError's
// ErrJSONSyntax kind without a dependency on the concrete JSON library's
// error type.
type jsonDecodeError struct {
	cause error
}

func (e *jsonDecodeError) Error() string { return ErrJSONSyntax.Error() + ": " + e.cause.Error() }
func (e *jsonDecodeError) Unwrap() error { return ErrJSONSyntax }
