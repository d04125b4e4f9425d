package domain

// TagsInput carries normalized interest tags for a taste-graph lookup
type TagsInput struct {
	Tags []string `json:"tags" validate:"required,min=1,max=8,dive,min=1,max=50" example:"data-science"`
}
