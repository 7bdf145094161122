package core

import (
	"regexp"
	"strings"
)

var (
	separatorPattern   = regexp.MustCompile(`[,;]`)
	camelCasePattern   = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	acronymPattern     = regexp.MustCompile(`(\p{Lu}+)(\p{Lu}\p{Ll})`)
	letterDigitPattern = regexp.MustCompile(`(\p{L})(\d)`)
	digitLetterPattern = regexp.MustCompile(`(\d)(\p{L})`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// NormalizeQuery converts a raw user query into its canonical search form:
//
//   - comma and semicolon separators are eliminated
//   - camelCase word boundaries are split ("MilkChocolate" -> "Milk Chocolate",
//     "XMLHttp" -> "XML Http")
//   - letters and digits are separated in both directions ("500ml" -> "500 ml")
//   - the result is lowercased, whitespace-collapsed, and trimmed
//
// Unicode letter classes are used throughout so accented and non-Latin
// alphabets split the same way ASCII does. The function is idempotent:
// normalizing an already-normalized string returns it unchanged. Empty or
// whitespace-only input yields the empty string.
func NormalizeQuery(raw string) string {
	if raw == "" {
		return ""
	}

	// Separators go first: "Chocolate;Bar" must become two camelCase-adjacent
	// words before the boundary splits run.
	s := separatorPattern.ReplaceAllString(raw, " ")

	s = camelCasePattern.ReplaceAllString(s, "$1 $2")
	s = acronymPattern.ReplaceAllString(s, "$1 $2")

	s = letterDigitPattern.ReplaceAllString(s, "$1 $2")
	s = digitLetterPattern.ReplaceAllString(s, "$1 $2")

	s = strings.ToLower(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
