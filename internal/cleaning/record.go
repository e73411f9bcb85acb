package cleaning

import "strings"

// Delimiter separates fields on both the input and output side.
const Delimiter = ','

// ParseRecord splits a raw line into its fields and cleans each one.
// Consecutive delimiters yield empty fields rather than collapsing, so a
// line with k delimiters always produces k+1 fields; a trailing delimiter
// produces a trailing (sentinel) field. A line with no delimiter is a
// single-field record.
func ParseRecord(line string) []string {
	raw := strings.Split(line, string(Delimiter))
	fields := make([]string, len(raw))
	for i, f := range raw {
		fields[i] = CleanField(f)
	}
	return fields
}

// AppendRecord appends the cleaned fields to dst as one delimiter-joined
// line with a trailing newline and returns the extended slice. An empty
// field slice appends nothing — no blank output line is emitted.
//
// Fields are written raw: no quoting is re-applied even if a cleaned value
// still contains a delimiter or quote character.
func AppendRecord(dst []byte, fields []string) []byte {
	if len(fields) == 0 {
		return dst
	}
	dst = append(dst, fields[0]...)
	for _, f := range fields[1:] {
		dst = append(dst, Delimiter)
		dst = append(dst, f...)
	}
	return append(dst, '\n')
}
