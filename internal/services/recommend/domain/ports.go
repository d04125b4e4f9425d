package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Generate(ctx context.Context, in GenerateInput) (GenerateResult, error)
}
