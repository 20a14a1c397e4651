package utils

import "strings"

// StripNonAlphanumeric removes every character that is not a letter or digit.
// Users often type product codes without punctuation ("F232" for "Cód. F232");
// matching the stripped term against the stored code recovers those hits.
func StripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
