// Package sanitize normalizes free-text input before persistence or search.
package sanitize

import "strings"

// Text strips ASCII control characters (0x00-0x1F, 0x7F) and trims leading
// and trailing whitespace. It is pure and idempotent.
func Text(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}

// Tags maps every tag through Text, lowercases it, drops empty results and
// removes duplicates. First occurrence order is preserved.
func Tags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := strings.ToLower(Text(tag))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
