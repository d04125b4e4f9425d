// Package domain defines the core types for the signal service
package domain

import "time"

// ExperienceLevel buckets a developer's overall experience
type ExperienceLevel string

// ExperienceLevel values
const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExperienced  ExperienceLevel = "experienced"
)

// ContributionFrequency buckets how often a developer ships public work
type ContributionFrequency string

// ContributionFrequency values
const (
	ContributionOccasional ContributionFrequency = "occasional"
	ContributionRegular    ContributionFrequency = "regular"
	ContributionProlific   ContributionFrequency = "prolific"
)

// TechnicalProfile is a developer's technical signal snapshot.
// Immutable once fetched; not persisted by this service
type TechnicalProfile struct {
	Username  string                `json:"username"`
	Name      string                `json:"name,omitempty"`
	Bio       string                `json:"bio,omitempty"`
	Location  string                `json:"location,omitempty"`
	Company   string                `json:"company,omitempty"`
	Followers int                   `json:"followers"`
	Repos     int                   `json:"public_repos"`
	CreatedAt time.Time             `json:"created_at"`
	Languages map[string]int        `json:"languages"`
	Level     ExperienceLevel       `json:"experience_level"`
	Frequency ContributionFrequency `json:"contribution_frequency"`
}

// Candidate is a repository considered for recommendation.
// Immutable value object produced per search call
type Candidate struct {
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Language    string    `json:"language,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	PushedAt    time.Time `json:"pushed_at"`
	CreatedAt   time.Time `json:"created_at"`

	// derived contribution-friendliness flags
	HasGoodFirstIssues bool `json:"has_good_first_issues"`
	HasHelpWanted      bool `json:"has_help_wanted"`
	RecentlyActive     bool `json:"recently_active"`
}

// CandidateList is a search result page. Total may exceed len(Items)
type CandidateList struct {
	Total int         `json:"total"`
	Items []Candidate `json:"items"`
}

// SearchInput carries the candidate search parameters
type SearchInput struct {
	Query           string   `json:"query,omitempty" validate:"omitempty,max=500"`
	Language        string   `json:"language,omitempty" validate:"omitempty,max=50"`
	Difficulty      string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Topics          []string `json:"topics,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
	MinStars        int      `json:"min_stars,omitempty" validate:"omitempty,min=0"`
	RecentlyActive  bool     `json:"recently_active,omitempty"`
	GoodFirstIssues bool     `json:"good_first_issues,omitempty"`
	PerPage         int      `json:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
}

// AnalyzeInput asks for a profile analysis by login
type AnalyzeInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}
