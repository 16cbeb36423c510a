// Package schema turns raw column identifiers into a canonical comparable
// form. Normalization is the only place the system interprets a column name;
// everything downstream compares canonical names by exact equality.
package schema

import "strings"

// Schema is an ordered sequence of canonical column names from one data
// source. Order is insertion order as encountered in the source. Duplicates
// are preserved here; matching collapses them.
type Schema []string

// Normalize converts a raw column name into its canonical form: surrounding
// whitespace is trimmed, letters are lowercased, and every character outside
// [a-z0-9] is dropped. The result may be empty (a name consisting only of
// punctuation, for example). Normalize is pure and idempotent.
func Normalize(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FromList builds a Schema from a comma-delimited list of column names, e.g.
// "CitizenID, Full Name, DOB". Order is preserved, duplicates are kept, and
// names that normalize to nothing are dropped.
func FromList(s string) Schema {
	return FromFields(strings.Split(s, ","))
}

// FromFields builds a Schema from field names already extracted by a format
// parser, normalizing each in order and dropping empty results.
func FromFields(names []string) Schema {
	out := make(Schema, 0, len(names))
	for _, raw := range names {
		if name := Normalize(raw); name != "" {
			out = append(out, name)
		}
	}
	return out
}
