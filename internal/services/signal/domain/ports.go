package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	AnalyzeProfile(ctx context.Context, username string) (TechnicalProfile, error)
	Search(ctx context.Context, in SearchInput) (CandidateList, error)
}
