package module

import (
	"context"

	"reposcout/internal/services/recommend/domain"
	recsvc "reposcout/internal/services/recommend/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptRecommendPort struct{ svc recsvc.Service }

// Generate runs the full recommendation pipeline
func (a adaptRecommendPort) Generate(ctx context.Context, in domain.GenerateInput) (domain.GenerateResult, error) {
	return a.svc.Generate(ctx, in)
}
