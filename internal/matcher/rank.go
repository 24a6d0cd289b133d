package matcher

import (
	"sort"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
	"github.com/MrGHPrice/raycast-extensions/internal/service"
)

// Defaults applied when Options fields are zero.
const (
	DefaultMinScore   = 0.4
	DefaultMaxResults = 5
)

// MatchResult pairs a candidate chat with its similarity score.
type MatchResult struct {
	Chat      beeper.Chat `json:"chat"`
	Score     float64     `json:"score"`
	MatchType MatchType   `json:"matchType"`
}

// Options controls ranking. The zero value uses DefaultMinScore and
// DefaultMaxResults with no service filter.
type Options struct {
	// Service restricts candidates to a single messaging service. Both the
	// filter and each candidate's network are passed through
	// service.Normalize and compared for strict equality.
	Service string

	// MinScore is the minimum similarity to retain a candidate.
	MinScore float64

	// MaxResults caps the number of returned matches.
	MaxResults int
}

// Rank scores every candidate's title against query, drops candidates below
// MinScore, and returns up to MaxResults results sorted by descending score.
// Ties keep their original relative order. An empty result is not an error;
// callers decide how to react (typically via SuggestionMessage).
func Rank(candidates []beeper.Chat, query string, opts Options) []MatchResult {
	minScore := opts.MinScore
	if minScore == 0 {
		minScore = DefaultMinScore
	}
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}

	// Service filtering happens before scoring: a perfect title match on
	// the wrong network is never surfaced.
	if opts.Service != "" {
		want := service.Normalize(opts.Service)
		kept := make([]beeper.Chat, 0, len(candidates))
		for _, c := range candidates {
			if service.Normalize(c.Network) == want {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		score, matchType := Score(query, c.Title)
		if score >= minScore {
			results = append(results, MatchResult{
				Chat:      c,
				Score:     score,
				MatchType: matchType,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
