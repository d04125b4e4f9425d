package qloo

// InsightsResponse is the insights endpoint envelope with the fields we use
type InsightsResponse struct {
	Success bool    `json:"success"`
	Results Results `json:"results"`
}

// Results carries demographic entities and related interest tags
type Results struct {
	Demographics []DemographicEntity `json:"demographics"`
	Tags         []TagEntity         `json:"tags"`
}

// DemographicEntity is one demographic affinity row
type DemographicEntity struct {
	EntityID string           `json:"entity_id"`
	Query    DemographicQuery `json:"query"`
}

// DemographicQuery holds per-bracket and per-gender affinity values
type DemographicQuery struct {
	Age    map[string]float64 `json:"age"`
	Gender GenderSkew         `json:"gender"`
}

// GenderSkew is the gender affinity pair
type GenderSkew struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

// TagEntity is one related interest tag with its popularity score
type TagEntity struct {
	Name       string  `json:"name"`
	TagID      string  `json:"tag_id"`
	Popularity float64 `json:"popularity"`
}
