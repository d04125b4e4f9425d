// Package service validates externally visible repository links: a pure
// shape check first, then a lightweight existence probe for shape-valid URLs
package service

import (
	"context"
	"regexp"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"reposcout/internal/platform/logger"
	"reposcout/internal/services/linkcheck/domain"
)

// probeConcurrency caps parallel existence probes to respect upstream quotas
const probeConcurrency = 10

// repoURLPattern is the strict owner/repo shape. Anything deeper than the
// repository root fails the shape check
var repoURLPattern = regexp.MustCompile(`^https://github\.com/([A-Za-z0-9][A-Za-z0-9-]{0,38})/([A-Za-z0-9._-]+?)/?$`)

// ProbePort is the existence probe over the hosting service
type ProbePort interface {
	RepoExists(ctx context.Context, owner, repo string) (bool, error)
}

// Service defines the linkcheck contract
type Service interface {
	Validate(ctx context.Context, url string) domain.LinkResult
	ValidateBatch(ctx context.Context, urls []string) domain.BatchResult
}

// Svc implements the linkcheck service
type Svc struct {
	probe   ProbePort
	log     logger.Logger
	limiter *rate.Limiter
}

// New constructs a linkcheck service
func New(probe ProbePort) *Svc {
	if probe == nil {
		panic("linkcheck.Service requires a non nil probe port")
	}
	return &Svc{
		probe:   probe,
		log:     *logger.Named("linkcheck"),
		limiter: rate.NewLimiter(rate.Limit(probeConcurrency), probeConcurrency),
	}
}

// ParseRepoURL is the pure shape check. Returns owner, repo, ok
func ParseRepoURL(url string) (string, string, bool) {
	m := repoURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Validate checks one URL. Never returns an error: a malformed URL is
// IsValid=false, a failed probe is Exists=false with the reason in Err
func (s *Svc) Validate(ctx context.Context, url string) domain.LinkResult {
	owner, repo, ok := ParseRepoURL(url)
	if !ok {
		return domain.LinkResult{URL: url, Err: "url does not match the owner/repo shape"}
	}

	res := domain.LinkResult{URL: url, IsValid: true, Owner: owner, Repo: repo}
	exists, err := s.probe.RepoExists(ctx, owner, repo)
	if err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("existence probe failed, treating as missing")
		res.Err = err.Error()
		return res
	}
	res.Exists = exists
	if !exists {
		res.Err = "repository not found"
	}
	return res
}

// ValidateBatch validates urls concurrently, capped at probeConcurrency and
// rate limited. All probes run to completion; the batch itself never fails
func (s *Svc) ValidateBatch(ctx context.Context, urls []string) domain.BatchResult {
	results := make([]domain.LinkResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				results[i] = domain.LinkResult{URL: u, Err: err.Error()}
				return nil
			}
			results[i] = s.Validate(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	out := domain.BatchResult{Valid: []domain.LinkResult{}, Invalid: []domain.LinkResult{}}
	for _, r := range results {
		if r.IsValid && r.Exists {
			out.Valid = append(out.Valid, r)
			continue
		}
		out.Invalid = append(out.Invalid, r)
	}
	return out
}
