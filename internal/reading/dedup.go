// Package reading turns the flat rows of the dictionary store into the two
// wire shapes of the lookup API and wraps them in the versioned response
// envelope.
package reading

import "strings"

// DedupChars trims surrounding whitespace from the raw query string and
// splits it into distinct characters, first occurrence order preserved.
// Duplicates collapse silently. The result is never longer than the input.
func DedupChars(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	seen := make(map[rune]struct{}, len(trimmed))
	chars := make([]string, 0, len(trimmed))
	for _, r := range trimmed {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		chars = append(chars, string(r))
	}
	return chars
}
