// Package fusion scores repository candidates against a requester's cultural
// tag vocabulary and ranks them. The score is a heuristic similarity ratio,
// not a statistical estimator: matched/own with no normalization against
// tag-set size skew. Technical fit is applied upstream by filtering
// candidates by language before scoring
package fusion

import (
	"sort"

	"reposcout/internal/core/culturemap"
)

// Project is the minimal candidate view the scorer needs
type Project struct {
	FullName string
	Language string
	Topics   []string
	Stars    int
}

// Scored is a Project plus its cultural alignment
type Scored struct {
	Project

	// CulturalScore is |MatchedTags| / max(|Tags|, 1), always in [0,1]
	CulturalScore float64

	// Tags are the candidate's own derived cultural tags
	Tags []string

	// MatchedTags is the subset of Tags present in the requester vocabulary
	MatchedTags []string
}

// Score derives each candidate's tag set from language plus topics, matches
// it against requesterTags union relatedTags, and returns the list sorted by
// cultural score descending with star count breaking ties. A candidate with
// zero derivable tags scores exactly 0
func Score(projects []Project, requesterTags, relatedTags []string) []Scored {
	vocab := make(map[string]struct{}, len(requesterTags)+len(relatedTags))
	for _, t := range requesterTags {
		vocab[t] = struct{}{}
	}
	for _, t := range relatedTags {
		vocab[t] = struct{}{}
	}

	out := make([]Scored, 0, len(projects))
	for _, p := range projects {
		tokens := make([]string, 0, len(p.Topics)+1)
		if p.Language != "" {
			tokens = append(tokens, p.Language)
		}
		tokens = append(tokens, p.Topics...)

		tags := culturemap.MapTokens(tokens)
		matched := make([]string, 0, len(tags))
		for _, t := range tags {
			if _, ok := vocab[t]; ok {
				matched = append(matched, t)
			}
		}

		s := Scored{Project: p, Tags: tags, MatchedTags: matched}
		if len(tags) > 0 {
			s.CulturalScore = float64(len(matched)) / float64(len(tags))
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CulturalScore != out[j].CulturalScore {
			return out[i].CulturalScore > out[j].CulturalScore
		}
		return out[i].Stars > out[j].Stars
	})
	return out
}
