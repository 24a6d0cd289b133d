package matcher

import (
	"math"
	"strings"
)

// MatchType identifies the matching strategy that produced a score. It is
// carried on results for diagnostics and tie-break reasoning.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchStartsWith MatchType = "startsWith"
	MatchContains   MatchType = "contains"
	MatchWord       MatchType = "word"
	MatchFuzzy      MatchType = "fuzzy"
)

// Score rates how well query matches target, returning a score in [0, 1]
// and the match type that produced it. Comparison is case- and
// whitespace-insensitive. First matching rule wins:
//
//	exact            1.0
//	startsWith       0.95  ("John" matches "John Smith")
//	word             0.9 for an exact token, 0.8 for a token prefix
//	                 ("Smith" and "Smi" match "John Smith")
//	contains         0.85  (substring that does not start a token)
//	fuzzy fallback   1 - editDistance/maxLen, boosted 1.1x when first chars agree
//
// Note the word rule fires before contains, so a token-prefix match scores
// 0.8 even though the query is also a substring.
func Score(query, target string) (float64, MatchType) {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))

	// Both-empty collapses to equality here, which also sidesteps the
	// division by zero in the fuzzy normalization.
	if q == t {
		return 1.0, MatchExact
	}
	if strings.HasPrefix(t, q) {
		return 0.95, MatchStartsWith
	}

	// Scan all tokens so an exact word hit late in the title still beats a
	// prefix hit on an earlier token. The first qualifying token of each
	// kind wins.
	wordScore := 0.0
	for _, w := range strings.Fields(t) {
		if w == q {
			wordScore = 0.9
			break
		}
		if wordScore == 0 && strings.HasPrefix(w, q) {
			wordScore = 0.8
		}
	}
	if wordScore > 0 {
		return wordScore, MatchWord
	}
	if strings.Contains(t, q) {
		return 0.85, MatchContains
	}

	return fuzzyScore(q, t), MatchFuzzy
}

// fuzzyScore converts the Levenshtein distance between two normalized
// strings into a similarity in [0, 1]. Matching first characters earn a
// 1.1x boost, capped at 1.0.
func fuzzyScore(q, t string) float64 {
	qr, tr := []rune(q), []rune(t)
	maxLen := len(qr)
	if len(tr) > maxLen {
		maxLen = len(tr)
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein(qr, tr)
	score := 1.0 - float64(dist)/float64(maxLen)
	if len(qr) > 0 && len(tr) > 0 && qr[0] == tr[0] {
		score = math.Min(score*1.1, 1.0)
	}
	return score
}

// levenshtein computes the edit distance between two rune slices using the
// classic dynamic-programming grid with unit insert/delete/substitute costs.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	d := make([][]int, len(b)+1)
	for i := range d {
		d[i] = make([]int, len(a)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(a); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(b); i++ {
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			d[i][j] = minInt(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}
	return d[len(b)][len(a)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
