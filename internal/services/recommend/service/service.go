// Package service contains the recommendation generator: it fuses technical
// and cultural signals, drives the generative call through a three-tier
// fallback chain, and validates every outgoing repository link
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"reposcout/internal/core/culturemap"
	"reposcout/internal/core/fusion"
	perr "reposcout/internal/platform/errors"
	"reposcout/internal/platform/logger"
	insightdomain "reposcout/internal/services/insight/domain"
	linkdomain "reposcout/internal/services/linkcheck/domain"
	"reposcout/internal/services/recommend/domain"
	signaldomain "reposcout/internal/services/signal/domain"
)

// promptCandidateCap bounds how many scored candidates reach the prompt
const promptCandidateCap = 10

// genState tags the pipeline stages for logging
type genState string

const (
	stateGathering  genState = "gathering"
	statePrompting  genState = "prompting"
	stateValidating genState = "validating"
	stateDone       genState = "done"
)

// SignalPort is the technical signal slice the generator consumes
type SignalPort interface {
	Search(ctx context.Context, in signaldomain.SearchInput) (signaldomain.CandidateList, error)
	AnalyzeProfile(ctx context.Context, username string) (signaldomain.TechnicalProfile, error)
}

// InsightPort is the cultural signal slice the generator consumes
type InsightPort interface {
	EnhanceProfile(ctx context.Context, profile signaldomain.TechnicalProfile) (insightdomain.CulturalSignal, error)
}

// LinkPort validates outgoing repository links
type LinkPort interface {
	ValidateBatch(ctx context.Context, urls []string) linkdomain.BatchResult
}

// GeneratorPort is the generative model surface: one schema-constrained call
// mode and one freeform text mode
type GeneratorPort interface {
	GenerateObject(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service defines the recommend service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the recommend service
type Svc struct {
	signal  SignalPort
	insight InsightPort
	links   LinkPort
	gen     GeneratorPort
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

// New constructs a recommend service. The generator port may be nil, in
// which case every request resolves through the heuristic tier
func New(sig SignalPort, ins InsightPort, links LinkPort, gen GeneratorPort) *Svc {
	if sig == nil {
		panic("recommend.Service requires a non nil signal port")
	}
	if ins == nil {
		panic("recommend.Service requires a non nil insight port")
	}
	if links == nil {
		panic("recommend.Service requires a non nil link port")
	}
	return &Svc{
		signal:  sig,
		insight: ins,
		links:   links,
		gen:     gen,
		log:     *logger.Named("recommend"),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// Generate runs the full pipeline. Given at least one candidate it always
// produces a result or a typed NoResults error; expected upstream flakiness
// never surfaces as a raw failure
func (s *Svc) Generate(ctx context.Context, in domain.GenerateInput) (domain.GenerateResult, error) {
	g := s.gather(ctx, in)
	if len(g.candidates.Items) == 0 {
		return domain.GenerateResult{}, perr.WithOp(
			perr.NoResultsf("no candidates matched the request"), "recommend.generate")
	}

	scored := s.score(g, in)
	if len(scored) > promptCandidateCap {
		scored = scored[:promptCandidateCap]
	}

	s.log.Debug().Str("state", string(statePrompting)).Int("candidates", len(scored)).Msg("pipeline state")
	resp, tier := s.generateTiers(ctx, in, g, scored)

	s.log.Debug().Str("state", string(stateValidating)).Str("tier", string(tier)).Msg("pipeline state")
	recs, err := s.validateLinks(ctx, resp, scored)
	if err != nil {
		return domain.GenerateResult{}, err
	}

	s.log.Debug().Str("state", string(stateDone)).Int("recommendations", len(recs)).Msg("pipeline state")
	return domain.GenerateResult{
		ID:              s.newID(),
		Recommendations: recs,
		Reasoning:       resp.Reasoning,
		UserAnalysis:    resp.UserAnalysis,
		Tier:            tier,
		CulturalSignal:  g.cultural.Available,
		GeneratedAt:     s.now().UTC(),
	}, nil
}

// score fuses candidates with the requester's cultural vocabulary
func (s *Svc) score(g gathered, in domain.GenerateInput) []fusion.Scored {
	requesterTags := g.cultural.Tags
	if len(requesterTags) == 0 {
		// cultural branch never ran or returned nothing; derive locally
		tokens := make([]string, 0, 4)
		if in.Language != "" {
			tokens = append(tokens, in.Language)
		}
		tokens = append(tokens, in.Topics...)
		requesterTags = culturemap.MapTokens(tokens)
	}

	projects := make([]fusion.Project, 0, len(g.candidates.Items))
	for _, c := range g.candidates.Items {
		projects = append(projects, fusion.Project{
			FullName: c.FullName,
			Language: c.Language,
			Topics:   c.Topics,
			Stars:    c.Stars,
		})
	}
	return fusion.Score(projects, requesterTags, g.cultural.RelatedTagNames())
}

// validateLinks drops every project whose URL fails validation. Zero
// survivors is a typed condition, never a silently empty success
func (s *Svc) validateLinks(ctx context.Context, resp domain.ModelResponse, scored []fusion.Scored) ([]domain.Recommendation, error) {
	urls := make([]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		urls = append(urls, p.URL)
	}
	batch := s.links.ValidateBatch(ctx, urls)

	ok := make(map[string]struct{}, len(batch.Valid))
	for _, v := range batch.Valid {
		ok[v.URL] = struct{}{}
	}

	byName := candidateIndex(scored)
	recs := make([]domain.Recommendation, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		if _, valid := ok[p.URL]; !valid {
			s.log.Warn().Str("url", p.URL).Str("name", p.Name).Msg("dropping recommendation with invalid link")
			continue
		}
		recs = append(recs, s.toRecommendation(p, byName))
	}

	if len(recs) == 0 {
		return nil, perr.WithOp(
			perr.NoResultsf("no valid recommendations after link validation"), "recommend.validate")
	}
	return recs, nil
}

// toRecommendation backfills star counts from the gathered candidates when
// the model omitted them
func (s *Svc) toRecommendation(p domain.ModelProject, byName map[string]fusion.Scored) domain.Recommendation {
	rec := domain.Recommendation{
		Name:              p.Name,
		Description:       p.Description,
		URL:               p.URL,
		Languages:         p.Languages,
		Topics:            p.Topics,
		Stars:             p.Stars,
		Difficulty:        p.Difficulty,
		Explanation:       p.Explanation,
		ContributionTypes: p.ContributionTypes,
		Score:             p.Score,
	}
	if c, found := byName[p.Name]; found && rec.Stars == 0 {
		rec.Stars = c.Stars
	}
	return rec
}

func candidateIndex(scored []fusion.Scored) map[string]fusion.Scored {
	out := make(map[string]fusion.Scored, len(scored))
	for _, sc := range scored {
		out[sc.FullName] = sc
	}
	return out
}
