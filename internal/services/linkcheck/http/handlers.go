// Package http provides http transport for link validation
package http

import (
	stdhttp "net/http"

	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/services/linkcheck/domain"
	svc "reposcout/internal/services/linkcheck/service"
)

// Register mounts link validation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// batch shape check and existence probe
	httpkit.PostJSON[domain.ValidateInput](r, "/validate", h.validate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /links/validate Links linksValidate
// @Summary Validate repository links
// @Tags Links
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "URLs"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /links/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.ValidateBatch(r.Context(), in.URLs), nil
}
