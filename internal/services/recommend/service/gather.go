package service

import (
	"context"
	"sync"

	insightdomain "reposcout/internal/services/insight/domain"
	"reposcout/internal/services/recommend/domain"
	signaldomain "reposcout/internal/services/signal/domain"
)

// gathered holds whatever subset of signals the gathering stage produced.
// Explicit ok flags instead of swallowed errors so later stages can inspect
// which signals were available
type gathered struct {
	candidates signaldomain.CandidateList

	profile   signaldomain.TechnicalProfile
	profileOK bool

	cultural insightdomain.CulturalSignal
}

// gather runs the search branch and the profile+insight branch concurrently
// with settle-all semantics: neither branch's failure cancels the other, and
// the pipeline proceeds with whatever succeeded
func (s *Svc) gather(ctx context.Context, in domain.GenerateInput) gathered {
	s.log.Debug().Str("state", string(stateGathering)).Msg("pipeline state")

	var (
		wg sync.WaitGroup
		g  gathered
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		list, err := s.signal.Search(ctx, signaldomain.SearchInput{
			Query:           in.Query,
			Language:        in.Language,
			Difficulty:      in.Difficulty,
			Topics:          in.Topics,
			MinStars:        in.MinStars,
			GoodFirstIssues: in.Difficulty == "beginner",
		})
		if err != nil {
			// search is specified never to fail; guard anyway
			s.log.Warn().Err(err).Msg("search branch failed, proceeding without candidates")
			return
		}
		g.candidates = list
	}()

	go func() {
		defer wg.Done()
		basis := signaldomain.TechnicalProfile{
			Languages: map[string]int{},
		}
		if in.Language != "" {
			basis.Languages[in.Language] = 1
		}

		if in.Username != "" {
			p, err := s.signal.AnalyzeProfile(ctx, in.Username)
			if err != nil {
				s.log.Warn().Err(err).Str("username", in.Username).Msg("profile analysis failed, proceeding without it")
			} else {
				g.profile = p
				g.profileOK = true
				basis = p
			}
		}

		if !in.UseCulturalInsights {
			return
		}
		sig, err := s.insight.EnhanceProfile(ctx, basis)
		if err != nil {
			// the insight service degrades internally; a hard error here is
			// unexpected but still non-fatal
			s.log.Warn().Err(err).Msg("cultural enhancement failed, proceeding without it")
			return
		}
		g.cultural = sig
	}()

	wg.Wait()
	return g
}
