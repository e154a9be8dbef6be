// Package suggest finds close matches for mistyped names.
package suggest

import "github.com/agext/levenshtein"

// String returns the candidate closest to want, or an empty string when
// nothing is close enough. The allowed edit distance scales with the length
// of the input so short names require a near exact match.
func String(want string, candidates []string) string {
	maxDist := len(want) / 4
	if maxDist == 0 {
		maxDist = 1
	}

	best := ""
	bestDist := maxDist + 1
	for _, c := range candidates {
		if c == want {
			return c
		}
		if d := levenshtein.Distance(want, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
