package culturemap

import (
	"regexp"
	"strings"
)

// interest extraction is best-effort; each pattern captures the phrase that
// follows the cue word, trimmed to a few words
var bioPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)passionate about ([a-z0-9+#./ -]{2,40})`),
	regexp.MustCompile(`(?i)\b([a-z0-9+#./-]{2,30}) enthusiast\b`),
	regexp.MustCompile(`(?i)\bbuilding ([a-z0-9+#./ -]{2,40})`),
	regexp.MustCompile(`(?i)\blove(?:s)? ([a-z0-9+#./ -]{2,40})`),
	regexp.MustCompile(`(?i)\binto ([a-z0-9+#./ -]{2,40})`),
	regexp.MustCompile(`(?i)\bworking on ([a-z0-9+#./ -]{2,40})`),
}

// stopwords that survive capture but carry no interest signal
var bioStop = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "with": {}, "for": {},
	"things": {}, "stuff": {}, "cool": {}, "new": {}, "my": {}, "of": {},
}

// BioTokens extracts interest tokens from free-text bio content. May return
// nothing; callers treat the result as a bonus signal only
func BioTokens(bio string) []string {
	if strings.TrimSpace(bio) == "" {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for _, re := range bioPatterns {
		for _, m := range re.FindAllStringSubmatch(bio, -1) {
			phrase := strings.TrimSpace(m[1])
			// clip at sentence punctuation left inside the capture window
			if i := strings.IndexAny(phrase, ",.;:!?"); i >= 0 {
				phrase = phrase[:i]
			}
			for _, w := range strings.Fields(phrase) {
				tok := NormalizeToken(w)
				if tok == "" || len(tok) < 2 {
					continue
				}
				if _, stop := bioStop[tok]; stop {
					continue
				}
				if _, dup := seen[tok]; dup {
					continue
				}
				seen[tok] = struct{}{}
				out = append(out, tok)
			}
		}
	}
	return out
}
