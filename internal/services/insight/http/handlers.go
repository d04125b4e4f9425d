// Package http provides http transport for taste-graph insights
package http

import (
	stdhttp "net/http"

	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/services/insight/domain"
	svc "reposcout/internal/services/insight/service"
)

// Register mounts insight endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// demographic affinities for a tag set
	httpkit.PostJSON[domain.TagsInput](r, "/demographics", h.demographics)

	// related interests from the taste graph
	httpkit.PostJSON[domain.TagsInput](r, "/taste", h.taste)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /insights/demographics Insights insightsDemographics
// @Summary Demographic affinities for interest tags
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.TagsInput true "Tags"
// @Success 200 {array} domain.Demographic "ok"
// @Router /insights/demographics [post]
func (h *handlers) demographics(r *stdhttp.Request, in domain.TagsInput) (any, error) {
	return h.svc.Demographics(r.Context(), in.Tags)
}

// swagger:route POST /insights/taste Insights insightsTaste
// @Summary Related interests for interest tags
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.TagsInput true "Tags"
// @Success 200 {array} domain.RelatedTag "ok"
// @Router /insights/taste [post]
func (h *handlers) taste(r *stdhttp.Request, in domain.TagsInput) (any, error) {
	return h.svc.TasteAnalysis(r.Context(), in.Tags)
}
