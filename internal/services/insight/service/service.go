// Package service contains the cultural insight workflows over the taste
// graph. Every enrichment is optional: failures degrade the signal, they
// never abort the pipeline
package service

import (
	"context"
	"sync"

	"reposcout/internal/adapters/qloo"
	"reposcout/internal/core/culturemap"
	"reposcout/internal/platform/logger"
	"reposcout/internal/services/insight/domain"
	signaldomain "reposcout/internal/services/signal/domain"
)

// taste-graph entity filters for the insights endpoint
const (
	filterDemographics = "urn:demographics"
	filterTags         = "urn:tag"
	filterAudiences    = "urn:audience"
)

// InsightsPort is the slice of the taste-graph adapter the service consumes
type InsightsPort interface {
	Insights(ctx context.Context, filterType string, tags []string) (*qloo.InsightsResponse, error)
}

// Service defines the insight service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the insight service
type Svc struct {
	qloo InsightsPort
	log  logger.Logger
}

// New constructs an insight service
func New(q InsightsPort) *Svc {
	if q == nil {
		panic("insight.Service requires a non nil insights port")
	}
	return &Svc{qloo: q, log: *logger.Named("insight")}
}

// Demographics returns demographic affinity tuples for the given cultural
// tags
func (s *Svc) Demographics(ctx context.Context, tags []string) ([]domain.Demographic, error) {
	resp, err := s.qloo.Insights(ctx, filterDemographics, tags)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Demographic, 0, len(resp.Results.Demographics))
	for _, d := range resp.Results.Demographics {
		out = append(out, flattenDemographic(d))
	}
	return out, nil
}

// TasteAnalysis returns related interest tags for the given cultural tags
func (s *Svc) TasteAnalysis(ctx context.Context, tags []string) ([]domain.RelatedTag, error) {
	resp, err := s.qloo.Insights(ctx, filterTags, tags)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RelatedTag, 0, len(resp.Results.Tags))
	for _, t := range resp.Results.Tags {
		out = append(out, domain.RelatedTag{Name: t.Name, Popularity: t.Popularity})
	}
	return out, nil
}

// audiences returns taste-graph audiences for the given cultural tags
func (s *Svc) audiences(ctx context.Context, tags []string) ([]domain.Audience, error) {
	resp, err := s.qloo.Insights(ctx, filterAudiences, tags)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Audience, 0, len(resp.Results.Tags))
	for _, t := range resp.Results.Tags {
		out = append(out, domain.Audience{Name: t.Name, Affinity: t.Popularity})
	}
	return out, nil
}

// EnhanceProfile derives the requester's cultural tag vocabulary from the
// technical profile and issues the three insight sub-calls concurrently with
// settle-all semantics: any subset may fail and only thins the signal. A
// total outage yields an empty CulturalSignal with Available=false, not an
// error
func (s *Svc) EnhanceProfile(ctx context.Context, profile signaldomain.TechnicalProfile) (domain.CulturalSignal, error) {
	tokens := make([]string, 0, len(profile.Languages)+4)
	for lang := range profile.Languages {
		tokens = append(tokens, lang)
	}
	tokens = append(tokens, culturemap.BioTokens(profile.Bio)...)
	if profile.Location != "" {
		tokens = append(tokens, profile.Location)
	}

	tags := culturemap.MapTokens(tokens)
	categories := culturemap.InsightCategories(tokens)

	var (
		wg sync.WaitGroup

		demos    []domain.Demographic
		demosErr error

		related    []domain.RelatedTag
		relatedErr error

		auds    []domain.Audience
		audsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		demos, demosErr = s.Demographics(ctx, categories)
	}()
	go func() {
		defer wg.Done()
		related, relatedErr = s.TasteAnalysis(ctx, categories)
	}()
	go func() {
		defer wg.Done()
		auds, audsErr = s.audiences(ctx, categories)
	}()
	wg.Wait()

	if demosErr != nil {
		s.log.Warn().Err(demosErr).Msg("demographics unavailable, degrading signal")
	}
	if relatedErr != nil {
		s.log.Warn().Err(relatedErr).Msg("taste analysis unavailable, degrading signal")
	}
	if audsErr != nil {
		s.log.Warn().Err(audsErr).Msg("audiences unavailable, degrading signal")
	}

	if demosErr != nil && relatedErr != nil && audsErr != nil {
		return domain.CulturalSignal{Tags: tags, Available: false}, nil
	}

	return domain.CulturalSignal{
		Tags:             tags,
		Demographics:     demos,
		RelatedInterests: related,
		Audiences:        auds,
		Available:        true,
	}, nil
}

// flattenDemographic reduces an insights entity to one affinity tuple:
// the dominant age bracket plus a coarse gender skew label
func flattenDemographic(d qloo.DemographicEntity) domain.Demographic {
	out := domain.Demographic{Entity: d.EntityID, GenderSkew: "balanced"}
	for bracket, v := range d.Query.Age {
		if v > out.Affinity {
			out.Affinity = v
			out.AgeBracket = bracket
		}
	}
	if out.Affinity > 1 {
		out.Affinity = 1
	}
	if out.Affinity < 0 {
		out.Affinity = 0
	}
	const skewMargin = 0.1
	switch {
	case d.Query.Gender.Male > d.Query.Gender.Female+skewMargin:
		out.GenderSkew = "male"
	case d.Query.Gender.Female > d.Query.Gender.Male+skewMargin:
		out.GenderSkew = "female"
	}
	return out
}
