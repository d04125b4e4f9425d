package module

import (
	"context"

	"reposcout/internal/services/insight/domain"
	insightsvc "reposcout/internal/services/insight/service"
	signaldomain "reposcout/internal/services/signal/domain"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptInsightPort struct{ svc insightsvc.Service }

// Demographics returns demographic affinities for a tag set
func (a adaptInsightPort) Demographics(ctx context.Context, tags []string) ([]domain.Demographic, error) {
	return a.svc.Demographics(ctx, tags)
}

// TasteAnalysis returns related interests for a tag set
func (a adaptInsightPort) TasteAnalysis(ctx context.Context, tags []string) ([]domain.RelatedTag, error) {
	return a.svc.TasteAnalysis(ctx, tags)
}

// EnhanceProfile derives the full cultural signal for a technical profile
func (a adaptInsightPort) EnhanceProfile(ctx context.Context, p signaldomain.TechnicalProfile) (domain.CulturalSignal, error) {
	return a.svc.EnhanceProfile(ctx, p)
}
