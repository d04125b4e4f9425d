// Package http provides http transport for recommendation generation
package http

import (
	stdhttp "net/http"

	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/services/recommend/domain"
	svc "reposcout/internal/services/recommend/service"
)

// Register mounts recommendation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full fusion pipeline: gather, score, generate, validate
	httpkit.PostJSON[domain.GenerateInput](r, "/generate", h.generate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /recommendations/generate Recommendations recommendationsGenerate
// @Summary Generate repository recommendations
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Request"
// @Success 200 {object} domain.GenerateResult "ok"
// @Router /recommendations/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.svc.Generate(r.Context(), in)
}
