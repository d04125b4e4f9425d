// Package domain defines the core types for the recommend service
package domain

import "time"

// GenerationTier records which fallback tier produced the result
type GenerationTier string

// GenerationTier values, in attempt order
const (
	TierStructured   GenerationTier = "structured"
	TierTextFallback GenerationTier = "text_fallback"
	TierHeuristic    GenerationTier = "heuristic"
)

// Recommendation is the final externally visible unit. URL is guaranteed to
// match the owner/repo shape and to have passed the existence probe
type Recommendation struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	URL               string   `json:"url"`
	Languages         []string `json:"languages,omitempty"`
	Topics            []string `json:"topics,omitempty"`
	Stars             int      `json:"stars"`
	Difficulty        string   `json:"difficulty,omitempty"`
	Explanation       string   `json:"explanation"`
	ContributionTypes []string `json:"contribution_types,omitempty"`
	Score             int      `json:"score,omitempty"`
}

// GenerateResult is the full pipeline output
type GenerateResult struct {
	ID              string           `json:"id"`
	Recommendations []Recommendation `json:"recommendations"`
	Reasoning       string           `json:"reasoning,omitempty"`
	UserAnalysis    string           `json:"user_analysis,omitempty"`
	Tier            GenerationTier   `json:"generation_tier"`
	CulturalSignal  bool             `json:"cultural_insights_available"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
