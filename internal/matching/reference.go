package matching

import (
	"strings"
	"unicode"
)

// structuredRefPrefix marks ISO 11649 / Finnish creditor references.
const structuredRefPrefix = "RF"

// NormalizeReference canonicalizes a payment reference for exact-match
// comparison. Whitespace is stripped, the rest uppercased, and leading
// zeros removed ("RF" prefixed references keep the prefix and lose the
// zeros from the number part). All-zero references collapse to "0".
//
//	"9876 543 2103"        -> "98765432103"
//	"000123"               -> "123"
//	"RF00 0000 0000 1234"  -> "RF1234"
func NormalizeReference(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(raw))

	if strings.HasPrefix(normalized, structuredRefPrefix) {
		number := strings.TrimLeft(normalized[len(structuredRefPrefix):], "0")
		if number == "" {
			number = "0"
		}
		return structuredRefPrefix + number
	}

	normalized = strings.TrimLeft(normalized, "0")
	if normalized == "" {
		return "0"
	}
	return normalized
}
