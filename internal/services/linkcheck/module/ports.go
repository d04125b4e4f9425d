package module

import (
	"context"

	"reposcout/internal/services/linkcheck/domain"
	linksvc "reposcout/internal/services/linkcheck/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptLinkPort struct{ svc linksvc.Service }

// Validate checks a single repository URL
func (a adaptLinkPort) Validate(ctx context.Context, url string) domain.LinkResult {
	return a.svc.Validate(ctx, url)
}

// ValidateBatch checks a batch of repository URLs concurrently
func (a adaptLinkPort) ValidateBatch(ctx context.Context, urls []string) domain.BatchResult {
	return a.svc.ValidateBatch(ctx, urls)
}
