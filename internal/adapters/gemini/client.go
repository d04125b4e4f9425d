// Package gemini wraps the Google GenAI SDK for the recommendation
// generator. Two call modes: schema-constrained JSON and freeform text
package gemini

import (
	"context"
	"time"

	perr "reposcout/internal/platform/errors"
	"reposcout/internal/platform/logger"

	"google.golang.org/genai"
)

const (
	defaultModel             = "gemini-2.5-flash"
	defaultStructuredTimeout = 30 * time.Second
	defaultTextTimeout       = 20 * time.Second
)

// Options configures the Client
type Options struct {
	APIKey string
	Model  string

	// Per-mode deadlines applied when the caller context has none
	StructuredTimeout time.Duration
	TextTimeout       time.Duration
}

// Client is a thin wrapper over genai.Client
type Client struct {
	c    *genai.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client. The API key is required
func NewClient(ctx context.Context, o Options) (*Client, error) {
	if o.APIKey == "" {
		return nil, perr.InvalidArgf("genai api key is required")
	}
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.StructuredTimeout <= 0 {
		o.StructuredTimeout = defaultStructuredTimeout
	}
	if o.TextTimeout <= 0 {
		o.TextTimeout = defaultTextTimeout
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: o.APIKey})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "genai client init failed")
	}
	return &Client{c: c, opts: o, log: *logger.Named("gemini")}, nil
}

// GenerateObject requests a schema-constrained JSON object and returns the
// raw JSON text for the caller to unmarshal and validate
func (c *Client) GenerateObject(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	ctx, cancel := c.withDeadline(ctx, c.opts.StructuredTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.c.Models.GenerateContent(ctx,
		c.opts.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "genai structured call failed")
	}
	c.log.Debug().Dur("latency", time.Since(start)).Str("mode", "structured").Msg("genai response")

	txt := resp.Text()
	if txt == "" {
		return "", perr.Schemaf("genai structured call returned no text")
	}
	return txt, nil
}

// GenerateText requests freeform text from a prompt
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := c.withDeadline(ctx, c.opts.TextTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.c.Models.GenerateContent(ctx, c.opts.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "genai text call failed")
	}
	c.log.Debug().Dur("latency", time.Since(start)).Str("mode", "text").Msg("genai response")

	txt := resp.Text()
	if txt == "" {
		return "", perr.Unavailablef("genai text call returned no text")
	}
	return txt, nil
}

func (c *Client) withDeadline(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
