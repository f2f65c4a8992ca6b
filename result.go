package linestruct

import (
	"fmt"
	"strconv"

	"github.com/kaptinlin/go-i18n"
)

// FieldError is a structured decode/validate failure, carrying enough detail
// to render the §6.3 diagnostic shape ("Line <n>: <subject> <detail>") and,
// optionally, to localize it.
type FieldError struct {
	Kind ErrorKind
	// Line is the 1-based line number within the document, or 0 if none
	// was attached (e.g. an error from ParseSchema or DecodeRow called
	// directly; Decode attaches the line, including 1 and 2 for the header
	// and schema lines).
	Line int
	// Field is the offending field name, when known.
	Field string
	// Code is a stable, machine-readable message key used for
	// localization lookups.
	Code string
	// Message is the default (English) message template; placeholders of
	// the form {name} are substituted from Params.
	Message string
	Params  map[string]any
	// Err is the underlying sentinel error this FieldError wraps.
	Err error
}

// NewFieldError builds a FieldError for the given sentinel error kind.
func NewFieldError(kind ErrorKind, err error, code, message string, params ...map[string]any) *FieldError {
	fe := &FieldError{Kind: kind, Code: code, Message: message, Err: err}
	if len(params) > 0 {
		fe.Params = params[0]
	}
	return fe
}

// WithLine attaches a 1-based line number and returns the receiver for
// chaining.
func (e *FieldError) WithLine(line int) *FieldError {
	e.Line = line
	return e
}

// WithField attaches a field name and returns the receiver for chaining.
func (e *FieldError) WithField(field string) *FieldError {
	e.Field = field
	return e
}

// Error renders the default diagnostic: "Line <n>: <field> <detail>" when a
// line number is known, else "<section>: <detail>". See spec §6.3.
func (e *FieldError) Error() string {
	detail := replace(e.Message, e.Params)

	switch {
	case e.Line > 0 && e.Field != "":
		return "Line " + strconv.Itoa(e.Line) + ": " + e.Field + " " + detail
	case e.Line > 0:
		return "Line " + strconv.Itoa(e.Line) + ": " + detail
	case e.Field != "":
		return e.Field + ": " + detail
	default:
		return detail
	}
}

// Unwrap exposes the underlying sentinel error for errors.Is/errors.As.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Localize renders the diagnostic using the given localizer's translation
// for e.Code, falling back to the default English rendering when localizer
// is nil or has no translation for the code.
func (e *FieldError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil || e.Code == "" {
		return e.Error()
	}
	detail := localizer.Get(e.Code, i18n.Vars(e.Params))
	if detail == "" {
		return e.Error()
	}

	switch {
	case e.Line > 0 && e.Field != "":
		return fmt.Sprintf("Line %d: %s %s", e.Line, e.Field, detail)
	case e.Line > 0:
		return fmt.Sprintf("Line %d: %s", e.Line, detail)
	case e.Field != "":
		return e.Field + ": " + detail
	default:
		return detail
	}
}
