package matching

import "strings"

// Name specificity levels, used to rank how complete a fuzzy match is.
const (
	SpecificitySubset    = 5 // one name fully contained in the longer, more complete one
	SpecificityExact     = 4
	SpecificityClose     = 3 // substring overlap ratio > 0.75
	SpecificityPartial   = 2
	SpecificityNoOverlap = 0
)

const closeOverlapRatio = 0.75

// legalEntitySuffixes are company-form suffixes whose presence on one side
// only should not break a match ("Best Supplies EMEA" vs "Best Supplies Inc").
var legalEntitySuffixes = map[string]struct{}{
	"oy":      {},
	"ltd":     {},
	"corp":    {},
	"inc":     {},
	"tmi":     {},
	"ab":      {},
	"as":      {},
	"gmbh":    {},
	"company": {},
	"co":      {},
}

// NormalizeName lowercases a counterparty name and collapses whitespace runs.
func NormalizeName(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// NamesMatch reports whether two counterparty names refer to the same party,
// allowing for variations: exact equality, one containing the other, and
// word-overlap with a small set of tolerated differences (a missing last
// name, a differing legal-entity suffix).
func NamesMatch(name1, name2 string) bool {
	if name1 == "" || name2 == "" {
		return false
	}

	norm1 := NormalizeName(name1)
	norm2 := NormalizeName(name2)
	if norm1 == "" || norm2 == "" {
		return false
	}

	if norm1 == norm2 {
		return true
	}

	// Known over-permissive for very short names ("al" matches "Walmart"),
	// kept deliberately; see the matching tests.
	if strings.Contains(norm2, norm1) || strings.Contains(norm1, norm2) {
		return true
	}

	words1 := wordSet(norm1)
	words2 := wordSet(norm2)
	if len(words1) == 0 || len(words2) == 0 {
		return false
	}

	common := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			common++
		}
	}

	totalWords := min(len(words1), len(words2))

	if common >= 2 {
		return float64(common)/float64(totalWords) >= 0.5
	}

	if common == 1 && totalWords <= 2 {
		rest1 := subtractCommon(words1, words2)
		rest2 := subtractCommon(words2, words1)

		// One name is a strict word subset of the other, e.g. a bare
		// first name against the full name.
		if len(rest1) == 0 || len(rest2) == 0 {
			return true
		}

		if len(rest1) == 1 && len(rest2) == 1 {
			if isLegalEntitySuffix(rest1[0]) || isLegalEntitySuffix(rest2[0]) {
				return true
			}
		}
	}

	return false
}

// NameSpecificity scores how complete/exact a name match is, 0-5. It ranks
// match quality only; NamesMatch decides whether the pair matches at all.
// A match where one name is the more complete version of the other beats an
// exact match, which beats looser substring overlap.
func NameSpecificity(name1, name2 string) int {
	if name1 == "" || name2 == "" {
		return SpecificityNoOverlap
	}

	norm1 := NormalizeName(name1)
	norm2 := NormalizeName(name2)

	if norm1 == norm2 {
		return SpecificityExact
	}

	if strings.Contains(norm2, norm1) || strings.Contains(norm1, norm2) {
		shorter, longer := norm1, norm2
		if len(norm1) > len(norm2) {
			shorter, longer = norm2, norm1
		}
		if strings.Contains(longer, shorter) {
			return SpecificitySubset
		}

		overlapRatio := float64(len(shorter)) / float64(len(longer))
		if overlapRatio > closeOverlapRatio {
			return SpecificityClose
		}
		return SpecificityPartial
	}

	return SpecificityNoOverlap
}

func wordSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		set[w] = struct{}{}
	}
	return set
}

func subtractCommon(from, other map[string]struct{}) []string {
	var rest []string
	for w := range from {
		if _, ok := other[w]; !ok {
			rest = append(rest, w)
		}
	}
	return rest
}

func isLegalEntitySuffix(word string) bool {
	_, ok := legalEntitySuffixes[strings.ToLower(word)]
	return ok
}
