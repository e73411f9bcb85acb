package cleaning

import "strings"

// Sentinel is the canonical replacement for missing or placeholder data.
const Sentinel = "0"

// trimCutset matches the whitespace set the weather exports use around
// field values. A stray \r from a CRLF line ending falls in here too.
const trimCutset = " \t\r\n"

// CleanField normalizes a single raw field value. Surrounding whitespace is
// trimmed and one enclosing pair of double quotes is stripped (no recursive
// unquoting, no escape handling). Empty, whitespace-only, "-" and "--"
// values become the sentinel. The function is total: it never fails and is
// idempotent over its own output.
func CleanField(raw string) string {
	trimmed := strings.Trim(raw, trimCutset)

	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		trimmed = trimmed[1 : len(trimmed)-1]
	}

	if isMissing(trimmed) {
		return Sentinel
	}
	return trimmed
}

// isMissing reports whether a trimmed, unquoted value stands for absent
// data. Quoted whitespace like "  " re-enters here after unquoting, so the
// whitespace check cannot be folded into the trim above.
func isMissing(v string) bool {
	if v == "-" || v == "--" {
		return true
	}
	return strings.Trim(v, trimCutset) == ""
}
