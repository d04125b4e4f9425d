// Package service contains the signal gateway workflows: candidate search
// with graceful degradation and developer profile analysis
package service

import (
	"context"
	"time"

	"reposcout/internal/adapters/github"
	"reposcout/internal/platform/logger"
	"reposcout/internal/services/signal/domain"
)

// recentWindowDays is the "recently active" horizon
const recentWindowDays = 90

// GitHubPort is the slice of the GitHub adapter the service consumes
type GitHubPort interface {
	SearchRepos(ctx context.Context, q, sort, order string, perPage int) (github.SearchResult, error)
	UserByLogin(ctx context.Context, login string) (github.User, error)
	UserRepos(ctx context.Context, login string, perPage int) ([]github.Repo, error)
}

// Service defines the signal service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the signal service
type Svc struct {
	gh  GitHubPort
	log logger.Logger
	now func() time.Time
}

// New constructs a signal service
func New(gh GitHubPort) *Svc {
	if gh == nil {
		panic("signal.Service requires a non nil GitHub port")
	}
	return &Svc{gh: gh, log: *logger.Named("signal"), now: time.Now}
}

// Search finds repository candidates. Best-effort: a failed primary query is
// retried once with a simpler query, and a second failure yields an explicit
// empty result rather than an error
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.CandidateList, error) {
	perPage := in.PerPage
	if perPage <= 0 {
		perPage = 30
	}

	q := buildQuery(in, s.now())
	res, err := s.gh.SearchRepos(ctx, q, "stars", "desc", perPage)
	if err != nil {
		rq := retryQuery(in.Language)
		s.log.Warn().Err(err).Str("query", q).Str("retry_query", rq).Msg("primary search failed, retrying simplified")
		res, err = s.gh.SearchRepos(ctx, rq, "stars", "desc", perPage)
		if err != nil {
			s.log.Warn().Err(err).Msg("simplified search failed, returning empty result")
			return domain.CandidateList{Total: 0, Items: []domain.Candidate{}}, nil
		}
	}

	items := make([]domain.Candidate, 0, len(res.Items))
	for _, r := range res.Items {
		items = append(items, s.toCandidate(r))
	}
	return domain.CandidateList{Total: res.TotalCount, Items: items}, nil
}

// AnalyzeProfile builds a TechnicalProfile for a login. Unlike Search this
// surfaces typed errors so the caller can decide whether to proceed without
// a profile
func (s *Svc) AnalyzeProfile(ctx context.Context, username string) (domain.TechnicalProfile, error) {
	u, err := s.gh.UserByLogin(ctx, username)
	if err != nil {
		return domain.TechnicalProfile{}, err
	}

	langs := map[string]int{}
	repos, err := s.gh.UserRepos(ctx, username, 100)
	if err != nil {
		// repo listing is enrichment only; the profile still stands
		s.log.Warn().Err(err).Str("username", username).Msg("user repos unavailable, language signal degraded")
	} else {
		for _, r := range repos {
			if r.Fork || r.Language == "" {
				continue
			}
			langs[r.Language]++
		}
	}

	age := s.now().Sub(u.CreatedAt)
	return domain.TechnicalProfile{
		Username:  u.Login,
		Name:      u.Name,
		Bio:       u.Bio,
		Location:  u.Location,
		Company:   u.Company,
		Followers: u.Followers,
		Repos:     u.PublicRepos,
		CreatedAt: u.CreatedAt,
		Languages: langs,
		Level:     experienceLevel(u.PublicRepos, age),
		Frequency: contributionFrequency(u.PublicRepos, age),
	}, nil
}

func (s *Svc) toCandidate(r github.Repo) domain.Candidate {
	c := domain.Candidate{
		FullName:    r.FullName,
		Description: r.Description,
		URL:         r.HTMLURL,
		Language:    r.Language,
		Topics:      r.Topics,
		Stars:       r.Stargazers,
		Forks:       r.ForksCount,
		OpenIssues:  r.OpenIssues,
		PushedAt:    r.PushedAt,
		CreatedAt:   r.CreatedAt,
	}
	for _, t := range r.Topics {
		switch t {
		case "good-first-issue", "good-first-issues", "beginner-friendly", "first-timers-only":
			c.HasGoodFirstIssues = true
		case "help-wanted", "contributions-welcome":
			c.HasHelpWanted = true
		}
	}
	// busy issue trackers usually have triaged entry points
	if !c.HasGoodFirstIssues && r.OpenIssues > 50 {
		c.HasGoodFirstIssues = true
	}
	c.RecentlyActive = !r.PushedAt.IsZero() && s.now().Sub(r.PushedAt) <= recentWindowDays*24*time.Hour
	return c
}

func experienceLevel(repos int, age time.Duration) domain.ExperienceLevel {
	const year = 365 * 24 * time.Hour
	switch {
	case repos < 2 || age < year:
		return domain.ExperienceBeginner
	case repos > 20 && age > 3*year:
		return domain.ExperienceExperienced
	default:
		return domain.ExperienceIntermediate
	}
}

func contributionFrequency(repos int, age time.Duration) domain.ContributionFrequency {
	years := age.Hours() / (365 * 24)
	if years < 0.25 {
		years = 0.25
	}
	perYear := float64(repos) / years
	switch {
	case perYear < 3:
		return domain.ContributionOccasional
	case perYear < 12:
		return domain.ContributionRegular
	default:
		return domain.ContributionProlific
	}
}
