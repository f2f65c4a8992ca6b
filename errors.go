package linestruct

import "errors"

// ErrorKind classifies a decode/validate failure. See spec §7.
type ErrorKind string

const (
	KindEmptyInput             ErrorKind = "EmptyInput"
	KindHeaderMissing          ErrorKind = "HeaderMissing"
	KindSchemaSyntax           ErrorKind = "SchemaSyntax"
	KindRowUnderflow           ErrorKind = "RowUnderflow"
	KindRowOverflow            ErrorKind = "RowOverflow"
	KindValueSyntax            ErrorKind = "ValueSyntax"
	KindDelimiterMismatch      ErrorKind = "DelimiterMismatch"
	KindExternalSchemaMismatch ErrorKind = "ExternalSchemaMismatch"
	KindJSONSyntax             ErrorKind = "JsonSyntax"
)

// === Sentinel errors, one per error kind plus a few structural causes ===
var (
	// ErrEmptyInput is returned when the input is null or blank.
	ErrEmptyInput = errors.New("empty input")

	// ErrHeaderMissing is returned when the EntityName: or schema: line is
	// absent.
	ErrHeaderMissing = errors.New("header missing")

	// ErrSchemaSyntax is returned when the schema line cannot be parsed.
	ErrSchemaSyntax = errors.New("schema syntax error")

	// ErrRowUnderflow is returned when a required field has no value.
	ErrRowUnderflow = errors.New("row underflow: missing required field")

	// ErrRowOverflow is returned when a row has more values than the schema
	// admits.
	ErrRowOverflow = errors.New("row overflow: extra field")

	// ErrValueSyntax is returned when a primitive or enum value fails its
	// lexical check.
	ErrValueSyntax = errors.New("value syntax error")

	// ErrDelimiterMismatch is returned when an object/array value is
	// missing its opening or closing delimiter.
	ErrDelimiterMismatch = errors.New("delimiter mismatch")

	// ErrExternalSchemaMismatch is returned when a document and an external
	// schema disagree on a field's type, optionality, or name.
	ErrExternalSchemaMismatch = errors.New("external schema mismatch")

	// ErrJSONSyntax is returned when JSON input is malformed.
	ErrJSONSyntax = errors.New("json syntax error")

	// ErrUnterminatedBracket is returned by the schema parser when a `‹`,
	// `«`, or `{` is never closed.
	ErrUnterminatedBracket = errors.New("unterminated bracket")

	// ErrUnmatchedCloser is returned by the schema parser when a `›`, `»`,
	// or `}` appears with no corresponding opener.
	ErrUnmatchedCloser = errors.New("unmatched closing bracket")

	// ErrEmptyEnum is returned for a `{}` enum declaration.
	ErrEmptyEnum = errors.New("empty enum")

	// ErrEmptyObject is returned for a `‹›` object declaration.
	ErrEmptyObject = errors.New("empty object")

	// ErrDuplicateField is returned when an Object declares the same field
	// name twice.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrDuplicateEnumValue is returned when an Enum declares the same
	// value twice.
	ErrDuplicateEnumValue = errors.New("duplicate enum value")

	// ErrUnknownPrimitive is returned for a primitive spelling that is not
	// one of string/int/float/bool/date/datetime.
	ErrUnknownPrimitive = errors.New("unknown primitive type")
)
