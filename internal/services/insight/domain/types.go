// Package domain defines the core types for the insight service
package domain

// Demographic is one derived affinity tuple
type Demographic struct {
	Entity     string  `json:"entity"`
	AgeBracket string  `json:"age_bracket"`
	GenderSkew string  `json:"gender_skew"`
	Affinity   float64 `json:"affinity"`
}

// RelatedTag is a related interest with its popularity score
type RelatedTag struct {
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
}

// Audience is a taste-graph audience with its affinity score
type Audience struct {
	Name     string  `json:"name"`
	Affinity float64 `json:"affinity"`
}

// CulturalSignal is the full cultural enrichment for one requester.
// Available=false means the taste graph was unreachable for the entire
// request; callers must treat that as "skip cultural blending", never as a
// fatal error
type CulturalSignal struct {
	Tags             []string     `json:"tags"`
	Demographics     []Demographic `json:"demographics,omitempty"`
	RelatedInterests []RelatedTag  `json:"related_interests,omitempty"`
	Audiences        []Audience    `json:"audiences,omitempty"`
	Available        bool          `json:"cultural_insights_available"`
}

// RelatedTagNames flattens related interests to plain tag names for scoring
func (s CulturalSignal) RelatedTagNames() []string {
	out := make([]string, 0, len(s.RelatedInterests))
	for _, t := range s.RelatedInterests {
		out = append(out, t.Name)
	}
	return out
}
