package domain

import (
	"context"

	signaldomain "reposcout/internal/services/signal/domain"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Demographics(ctx context.Context, tags []string) ([]Demographic, error)
	TasteAnalysis(ctx context.Context, tags []string) ([]RelatedTag, error)
	EnhanceProfile(ctx context.Context, profile signaldomain.TechnicalProfile) (CulturalSignal, error)
}
