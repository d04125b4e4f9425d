package module

import (
	"context"

	"reposcout/internal/services/signal/domain"
	signalsvc "reposcout/internal/services/signal/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSignalPort struct{ svc signalsvc.Service }

// AnalyzeProfile builds a technical profile from public activity
func (a adaptSignalPort) AnalyzeProfile(ctx context.Context, username string) (domain.TechnicalProfile, error) {
	return a.svc.AnalyzeProfile(ctx, username)
}

// Search finds candidate repositories for a request
func (a adaptSignalPort) Search(ctx context.Context, in domain.SearchInput) (domain.CandidateList, error) {
	return a.svc.Search(ctx, in)
}
