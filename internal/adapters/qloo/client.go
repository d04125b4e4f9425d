// Package qloo provides a client for the taste-graph insights API with a
// circuit breaker so a flapping upstream fails fast instead of burning the
// request timeout
package qloo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "reposcout/internal/platform/errors"
	"reposcout/internal/platform/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	baseURLDefault = "https://hackathon.api.qloo.com"
	defaultTimeout = 8 * time.Second

	breakerFailureThreshold = 3
	breakerOpenFor          = 30 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is a thin insights API client. All calls route through the breaker
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	cb   *gobreaker.CircuitBreaker[*InsightsResponse]
}

// NewClient creates a Client with sane defaults and a named breaker
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	log := logger.Named("qloo")

	settings := gobreaker.Settings{
		Name:    "qloo-insights",
		Timeout: breakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("qloo breaker state change")
		},
	}

	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *log,
		cb:   gobreaker.NewCircuitBreaker[*InsightsResponse](settings),
	}
}

// Insights queries the insights endpoint for the given entity filter and
// interest tags (comma-joined on the wire). Breaker-open and upstream errors
// both surface as Unavailable so callers degrade uniformly
func (c *Client) Insights(ctx context.Context, filterType string, tags []string) (*InsightsResponse, error) {
	out, err := c.cb.Execute(func() (*InsightsResponse, error) {
		return c.insights(ctx, filterType, tags)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, perr.Unavailablef("qloo breaker open")
		}
		return nil, err
	}
	return out, nil
}

// BreakerState reports the current breaker state for health reporting
func (c *Client) BreakerState() string { return c.cb.State().String() }

func (c *Client) insights(ctx context.Context, filterType string, tags []string) (*InsightsResponse, error) {
	v := url.Values{}
	v.Set("filter.type", filterType)
	v.Set("signal.interests.tags", strings.Join(tags, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/v2/insights?"+v.Encode(), nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "qloo new request failed")
	}
	req.Header.Set("Accept", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("X-Api-Key", c.opts.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "qloo do failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("qloo close body failed")
		}
	}()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Int("tags", len(tags)).
		Msg("qloo http response")

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "qloo rate limited")
	case resp.StatusCode >= 500:
		return nil, perr.Unavailablef("qloo server error %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, perr.Newf(perr.ErrorCodeUnknown, "qloo unexpected status %d body %s", resp.StatusCode, string(body))
	}

	var out InsightsResponse
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "qloo read body failed")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "qloo decode failed")
	}
	return &out, nil
}
