package domain

// GenerateInput is the recommendation request
type GenerateInput struct {
	Query               string   `json:"query,omitempty" validate:"omitempty,max=500" example:"find me beginner python projects"`
	Username            string   `json:"username,omitempty" validate:"omitempty,min=1,max=100" example:"octocat"`
	Language            string   `json:"language,omitempty" validate:"omitempty,max=50" example:"python"`
	Difficulty          string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced" example:"beginner"`
	Topics              []string `json:"topics,omitempty" validate:"omitempty,max=10,dive,min=1,max=50"`
	MinStars            int      `json:"min_stars,omitempty" validate:"omitempty,min=0" example:"100"`
	UseCulturalInsights bool     `json:"use_cultural_insights,omitempty"`
}

// ModelResponse is the schema the generative tiers must satisfy. Tier 1 asks
// the provider to enforce it; tier 2 re-validates the parsed text against the
// same rules
type ModelResponse struct {
	Projects     []ModelProject `json:"projects" validate:"required,min=1,max=10,dive"`
	Reasoning    string         `json:"reasoning" validate:"required"`
	UserAnalysis string         `json:"user_analysis,omitempty"`
}

// ModelProject is one recommended project as emitted by the model
type ModelProject struct {
	Name              string   `json:"name" validate:"required,max=200"`
	Description       string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	URL               string   `json:"url" validate:"required,url"`
	Languages         []string `json:"languages,omitempty"`
	Topics            []string `json:"topics,omitempty"`
	Stars             int      `json:"stars,omitempty" validate:"omitempty,min=0"`
	Difficulty        string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Explanation       string   `json:"explanation" validate:"required,max=2000"`
	ContributionTypes []string `json:"contribution_types,omitempty"`
	Score             int      `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
}
