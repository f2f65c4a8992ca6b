package linestruct

import "regexp"

// Lexical checks for the primitive Kinds, one small pure function per
// format (spec §4.4.1). Date/datetime are checked by regex only — no
// calendar-validity check is performed, matching the reference behavior
// (spec §9 Open Questions).
var (
	intPattern      = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern    = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?(Z|[+-]\d{2}:\d{2})$`)
)

// IsInt reports whether s is a valid signed decimal integer literal.
func IsInt(s string) bool {
	return intPattern.MatchString(s)
}

// IsFloat reports whether s is a valid signed decimal float literal, with
// an optional fractional part and optional exponent.
func IsFloat(s string) bool {
	return floatPattern.MatchString(s)
}

// IsBool reports whether s is exactly "true" or "false" (case-sensitive).
func IsBool(s string) bool {
	return s == "true" || s == "false"
}

// IsDate reports whether s matches the strict ISO YYYY-MM-DD shape.
func IsDate(s string) bool {
	return datePattern.MatchString(s)
}

// IsDateTime reports whether s matches the strict ISO
// YYYY-MM-DDTHH:MM:SS[.fff](Z|±HH:MM) shape.
func IsDateTime(s string) bool {
	return dateTimePattern.MatchString(s)
}

// checkPrimitiveSyntax dispatches to the lexical check for kind.
func checkPrimitiveSyntax(kind Kind, s string) bool {
	switch kind {
	case KindString:
		return true
	case KindInt:
		return IsInt(s)
	case KindFloat:
		return IsFloat(s)
	case KindBool:
		return IsBool(s)
	case KindDate:
		return IsDate(s)
	case KindDateTime:
		return IsDateTime(s)
	default:
		return false
	}
}
