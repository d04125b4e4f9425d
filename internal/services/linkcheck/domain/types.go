// Package domain defines the core types for the linkcheck service
package domain

// LinkResult is the verdict for one URL. Err is explanatory, never fatal:
// a probe failure reads as Exists=false with the reason attached
type LinkResult struct {
	URL     string `json:"url"`
	IsValid bool   `json:"is_valid"`
	Exists  bool   `json:"exists"`
	Owner   string `json:"owner,omitempty"`
	Repo    string `json:"repo,omitempty"`
	Err     string `json:"error,omitempty"`
}

// BatchResult partitions a batch into valid and invalid links.
// Valid means shape-valid and confirmed to exist
type BatchResult struct {
	Valid   []LinkResult `json:"valid"`
	Invalid []LinkResult `json:"invalid"`
}

// ValidateInput is the batch validation request
type ValidateInput struct {
	URLs []string `json:"urls" validate:"required,min=1,max=100,dive,url"`
}
