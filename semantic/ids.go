package semantic

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeID derives a vector ID from a category name. The backend only
// accepts non-empty ASCII identifiers, so the name is lowercased, spaces
// become underscores, ampersands spell out, diacritics fold to their base
// letters, and anything else is dropped. An empty result means the category
// cannot be indexed.
func SanitizeID(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "&", "and")

	// NFKD splits accented letters into base letter plus combining marks;
	// the marks fall out with the rest of the non-ASCII runes below.
	s = norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > unicode.MaxASCII {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayName reverses the cosmetic part of SanitizeID for hits whose
// metadata carries no original name: underscores back to spaces.
func DisplayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
