// Package resolver turns a free-text chat name into a single chat. It fetches
// candidates from the Beeper Desktop search endpoint, re-ranks them locally,
// and either produces a confident best match or an error that names the
// near-misses.
package resolver

import (
	"context"
	"fmt"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
	"github.com/MrGHPrice/raycast-extensions/internal/cache"
	"github.com/MrGHPrice/raycast-extensions/internal/matcher"
)

// NoMatchError reports that no candidate cleared the match threshold, or that
// the best candidates were too close to call. Its message is the user-facing
// (and AI-facing) suggestion text.
type NoMatchError struct {
	Query       string
	Service     string
	Suggestions []matcher.MatchResult
}

func (e *NoMatchError) Error() string {
	return matcher.SuggestionMessage(e.Query, e.Suggestions, e.Service)
}

// Resolver resolves chat names against the desktop app's search endpoint.
type Resolver struct {
	client *beeper.Client
	store  *cache.Store // optional; nil disables recency recording

	searchLimit    int
	minScore       float64
	maxResults     int
	confidentScore float64
}

// Options tunes resolution. Zero values fall back to the matcher defaults, a
// search limit of 20 and a confidence threshold of 0.8.
type Options struct {
	SearchLimit    int
	MinScore       float64
	MaxResults     int
	ConfidentScore float64
}

// New creates a Resolver. store may be nil.
func New(client *beeper.Client, store *cache.Store, opts Options) *Resolver {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 20
	}
	if opts.MinScore == 0 {
		opts.MinScore = matcher.DefaultMinScore
	}
	if opts.MaxResults == 0 {
		opts.MaxResults = matcher.DefaultMaxResults
	}
	if opts.ConfidentScore == 0 {
		opts.ConfidentScore = 0.8
	}
	return &Resolver{
		client:         client,
		store:          store,
		searchLimit:    opts.SearchLimit,
		minScore:       opts.MinScore,
		maxResults:     opts.MaxResults,
		confidentScore: opts.ConfidentScore,
	}
}

// Candidates fetches and ranks chats matching name, optionally restricted to
// a service. The returned slice may be empty; that is not an error.
func (r *Resolver) Candidates(ctx context.Context, name, svc string) ([]matcher.MatchResult, error) {
	chats, err := r.client.SearchChats(ctx, name, r.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search chats: %w", err)
	}

	return matcher.Rank(chats, name, matcher.Options{
		Service:    svc,
		MinScore:   r.minScore,
		MaxResults: r.maxResults,
	}), nil
}

// Resolve returns the single chat the user most plausibly meant by name.
// The best match wins when it is the only one or clears the confidence
// threshold; otherwise a NoMatchError carries the ranked alternatives.
func (r *Resolver) Resolve(ctx context.Context, name, svc string) (*beeper.Chat, error) {
	results, err := r.Candidates(ctx, name, svc)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, &NoMatchError{Query: name, Service: svc}
	}

	best := results[0]
	if len(results) > 1 && best.Score < r.confidentScore {
		return nil, &NoMatchError{Query: name, Service: svc, Suggestions: results}
	}

	if r.store != nil {
		// Recency bookkeeping is best-effort.
		_ = r.store.RecordUse(ctx, best.Chat)
	}
	return &best.Chat, nil
}
