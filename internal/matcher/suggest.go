package matcher

import (
	"fmt"
	"strings"
)

// maxSuggestions caps how many near-miss titles a suggestion message names.
const maxSuggestions = 3

// SuggestionMessage formats a human-readable message for callers that found
// no confident match. With no matches at all it explains that nothing was
// found (qualified by service when set); otherwise it names up to the first
// three matches as "did you mean" alternatives. Pure presentation over
// already-ranked data.
func SuggestionMessage(query string, topMatches []MatchResult, svc string) string {
	if len(topMatches) == 0 {
		if svc != "" {
			return fmt.Sprintf("No chat found matching %q on %s. Try a different name or check your connected services.", query, svc)
		}
		return fmt.Sprintf("No chat found matching %q. Try a different name or check your connected services.", query)
	}

	n := len(topMatches)
	if n > maxSuggestions {
		n = maxSuggestions
	}
	titles := make([]string, 0, n)
	for _, m := range topMatches[:n] {
		titles = append(titles, fmt.Sprintf("%q", m.Chat.Title))
	}

	return fmt.Sprintf("No confident match for %q. Did you mean: %s?", query, strings.Join(titles, ", "))
}
