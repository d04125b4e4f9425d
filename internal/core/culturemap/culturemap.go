// Package culturemap maps raw technical tokens (languages, topics, bio
// keywords) onto a cultural tag vocabulary and onto taste-graph category
// identifiers. Pure data transforms, no I/O
//
// Pipeline per token
// 1 alias rewrite for punctuation-heavy names (c++ -> cpp)
// 2 lowercase + NFD accent strip
// 3 non-alphanumeric runs -> single dash, trim edge dashes
// 4 table lookup; miss synthesizes tech-<token>
package culturemap

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tag is a normalized cultural tag such as "data-science"
type Tag = string

// maxInsightCategories bounds the taste-graph request batch size
const maxInsightCategories = 8

// foldChain strips combining marks after NFD so accented tokens collapse
// to their ASCII skeleton
var foldChain = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeToken returns the canonical lookup form of a raw token.
// Empty input yields empty output
func NormalizeToken(tok string) string {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if tok == "" {
		return ""
	}
	if a, ok := aliases[tok]; ok {
		tok = a
	}
	folded, _, err := transform.String(foldChain, tok)
	if err == nil {
		tok = folded
	}

	var b strings.Builder
	b.Grow(len(tok))
	dash := false
	for _, r := range tok {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// MapTokens maps tokens to cultural tags. Total and deterministic: every
// non-empty token contributes at least one tag (tech-<token> on a table
// miss), so non-empty input yields non-empty output. Result is sorted and
// deduplicated
func MapTokens(tokens []string) []Tag {
	seen := make(map[string]struct{}, len(tokens)*2)
	out := make([]Tag, 0, len(tokens)*2)
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, raw := range tokens {
		tok := NormalizeToken(raw)
		if tok == "" {
			continue
		}
		if tags, ok := cultureTable[tok]; ok {
			for _, t := range tags {
				add(t)
			}
			continue
		}
		add("tech-" + tok)
	}

	sort.Strings(out)
	return out
}

// InsightCategories maps tokens to taste-graph category identifiers for the
// insights request. Deduplicated and capped at maxInsightCategories to bound
// upstream latency and cost
func InsightCategories(tokens []string) []string {
	tags := MapTokens(tokens)
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, maxInsightCategories)
	for _, tag := range tags {
		cat, ok := categoryTable[tag]
		if !ok {
			cat = fallbackCategory
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
		if len(out) == maxInsightCategories {
			break
		}
	}
	return out
}
