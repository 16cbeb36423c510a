// Package match computes the set-based correspondence between two column
// schemas: names present in both, names only in the first, names only in the
// second. Comparison is exact equality of canonical names.
package match

import (
	"sort"

	"github.com/schemabridge-labs/schemabridge/internal/schema"
)

// Result is the three-way partition of two schemas. Collections are sorted
// lexicographically and never nil, so they serialize as JSON arrays rather
// than null.
type Result struct {
	Matches    []string `json:"matches"`
	UnmatchedA []string `json:"unmatched_a"`
	UnmatchedB []string `json:"unmatched_b"`
}

// Schemas compares two schemas treated as sets: duplicate names within one
// schema collapse, and each name lands in exactly one output collection.
func Schemas(a, b schema.Schema) Result {
	setA := toSet(a)
	setB := toSet(b)

	res := Result{
		Matches:    []string{},
		UnmatchedA: []string{},
		UnmatchedB: []string{},
	}

	for name := range setA {
		if _, ok := setB[name]; ok {
			res.Matches = append(res.Matches, name)
		} else {
			res.UnmatchedA = append(res.UnmatchedA, name)
		}
	}
	for name := range setB {
		if _, ok := setA[name]; !ok {
			res.UnmatchedB = append(res.UnmatchedB, name)
		}
	}

	sort.Strings(res.Matches)
	sort.Strings(res.UnmatchedA)
	sort.Strings(res.UnmatchedB)
	return res
}

func toSet(s schema.Schema) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, name := range s {
		set[name] = struct{}{}
	}
	return set
}
