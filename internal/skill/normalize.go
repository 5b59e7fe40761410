// Package skill provides canonical skill identifier handling.
//
// Every place a skill is compared, stored, or looked up must go through
// Normalize; dedup correctness depends on it.
package skill

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize converts a free-form skill name into its canonical
// identifier: lowercased, with every run of whitespace replaced by a
// single underscore. Idempotent.
func Normalize(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
}

// NormalizeAll canonicalizes a skill list, dropping empty entries and
// duplicates while preserving first-seen order.
func NormalizeAll(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		id := Normalize(n)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
