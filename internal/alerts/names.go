package alerts

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

var nonAlphanumeric = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s]`)

// legalSuffixes are entity designators dropped before names are compared.
var legalSuffixes = map[string]struct{}{
	"llc":          {},
	"inc":          {},
	"incorporated": {},
	"corp":         {},
	"corporation":  {},
	"co":           {},
	"company":      {},
	"ltd":          {},
	"limited":      {},
	"lp":           {},
	"llp":          {},
	"pllc":         {},
}

// NormalizeBusinessName lower-cases name, strips punctuation and drops
// entity designators such as "LLC" or "Inc.".
func NormalizeBusinessName(name string) string {
	name = nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "")

	tokens := strings.Fields(name)
	kept := tokens[:0]
	for _, t := range tokens {
		if _, ok := legalSuffixes[t]; !ok {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}

// NameSimilarity returns 1 - levenshtein distance / longer length over the
// normalised names, in [0,1]. When either name normalises to nothing, the
// lower-cased raw names are compared instead.
func NameSimilarity(a, b string) float64 {
	na, nb := NormalizeBusinessName(a), NormalizeBusinessName(b)
	if na == "" || nb == "" {
		na, nb = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	}
	if na == nb {
		return 1
	}

	longest := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	distance := levenshtein.ComputeDistance(na, nb)
	return 1 - float64(distance)/float64(longest)
}
