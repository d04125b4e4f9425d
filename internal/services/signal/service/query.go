package service

import (
	"fmt"
	"strings"
	"time"

	"reposcout/internal/services/signal/domain"
)

// maxQueryLen is the search qualifier budget; past it the free-text keywords
// are discarded for a minimal structured query
const maxQueryLen = 256

// conversational filler stripped from free-text queries before keyword
// extraction
var fillerWords = map[string]struct{}{
	"find": {}, "me": {}, "show": {}, "give": {}, "get": {}, "recommend": {},
	"suggest": {}, "looking": {}, "want": {}, "need": {}, "like": {},
	"some": {}, "any": {}, "a": {}, "an": {}, "the": {}, "for": {}, "to": {},
	"with": {}, "in": {}, "on": {}, "of": {}, "and": {}, "or": {}, "i": {},
	"please": {}, "good": {}, "nice": {}, "cool": {}, "interesting": {},
	"about": {}, "something": {},
	"project": {}, "projects": {}, "repo": {}, "repos": {}, "repository": {},
	"repositories": {}, "open": {}, "source": {}, "opensource": {},
	"beginner": {}, "beginners": {}, "easy": {}, "help": {}, "that": {},
	"are": {}, "is": {}, "can": {}, "contribute": {}, "contributing": {},
}

// maxKeywords bounds how many free-text tokens survive into the query
const maxKeywords = 2

// extractKeywords strips filler and keeps the first maxKeywords meaningful
// tokens
func extractKeywords(q string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(q)) {
		w = strings.Trim(w, ".,!?\"'()")
		if len(w) < 3 {
			continue
		}
		if _, filler := fillerWords[w]; filler {
			continue
		}
		out = append(out, w)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

// buildQuery assembles the primary search qualifier string.
// now is injected so the pushed window is deterministic in tests
func buildQuery(in domain.SearchInput, now time.Time) string {
	var parts []string

	parts = append(parts, extractKeywords(in.Query)...)

	if in.Language != "" {
		parts = append(parts, "language:"+in.Language)
	}
	for _, t := range in.Topics {
		parts = append(parts, "topic:"+t)
	}
	if in.MinStars > 0 {
		parts = append(parts, fmt.Sprintf("stars:>=%d", in.MinStars))
	}
	switch in.Difficulty {
	case "beginner":
		parts = append(parts, "good-first-issues:>1")
	case "advanced":
		parts = append(parts, "stars:>1000")
	}
	if in.GoodFirstIssues && in.Difficulty != "beginner" {
		parts = append(parts, "good-first-issues:>0")
	}
	if in.RecentlyActive {
		parts = append(parts, "pushed:>="+now.AddDate(0, 0, -recentWindowDays).Format("2006-01-02"))
	}

	// trending heuristic when the caller supplied nothing to narrow on
	if in.Query == "" && in.Language == "" && len(in.Topics) == 0 && in.MinStars == 0 {
		parts = append(parts,
			"stars:>500",
			"pushed:>="+now.AddDate(0, 0, -recentWindowDays).Format("2006-01-02"))
	}

	parts = append(parts, "is:public", "archived:false")

	q := strings.Join(parts, " ")
	if len(q) > maxQueryLen {
		return minimalQuery(in.Language)
	}
	return q
}

// minimalQuery is the length-budget escape hatch
func minimalQuery(lang string) string {
	if lang != "" {
		return "language:" + lang + " is:public archived:false"
	}
	return "stars:>100 is:public archived:false"
}

// retryQuery is the even simpler second-tier query used after an upstream
// failure
func retryQuery(lang string) string {
	if lang != "" {
		return "language:" + lang + " stars:>10 is:public"
	}
	return "stars:>100 is:public"
}
