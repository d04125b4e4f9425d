// Package http provides http transport for developer profile analysis
package http

import (
	stdhttp "net/http"

	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/services/signal/domain"
	svc "reposcout/internal/services/signal/service"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// technical profile from public activity
	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /profile/analyze Profile profileAnalyze
// @Summary Analyze a developer's public profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Login"
// @Success 200 {object} domain.TechnicalProfile "ok"
// @Router /profile/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.AnalyzeProfile(r.Context(), in.Username)
}
