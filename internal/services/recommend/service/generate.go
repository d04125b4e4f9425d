package service

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"reposcout/internal/core/fusion"
	perr "reposcout/internal/platform/errors"
	"reposcout/internal/platform/net/http/bind"
	"reposcout/internal/services/recommend/domain"
)

// responseSchema constrains tier 1 output to the ModelResponse shape
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"projects": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":               {Type: genai.TypeString},
					"description":        {Type: genai.TypeString},
					"url":                {Type: genai.TypeString},
					"languages":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"topics":             {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"stars":              {Type: genai.TypeInteger},
					"difficulty":         {Type: genai.TypeString},
					"explanation":        {Type: genai.TypeString},
					"contribution_types": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"score":              {Type: genai.TypeInteger},
				},
				Required: []string{"name", "url", "explanation"},
			},
		},
		"reasoning":     {Type: genai.TypeString},
		"user_analysis": {Type: genai.TypeString},
	},
	Required: []string{"projects", "reasoning"},
}

// generateTiers walks the fallback chain: structured object, then freeform
// text parsed as JSON, then a deterministic heuristic. The heuristic tier
// always succeeds given at least one candidate
func (s *Svc) generateTiers(ctx context.Context, in domain.GenerateInput, g gathered, scored []fusion.Scored) (domain.ModelResponse, domain.GenerationTier) {
	if s.gen != nil {
		prompt := s.buildPrompt(in, g, scored)

		resp, err := s.structured(ctx, prompt)
		if err == nil {
			return resp, domain.TierStructured
		}
		s.log.Warn().Err(err).Msg("structured generation failed, trying text fallback")

		resp, err = s.textFallback(ctx, prompt)
		if err == nil {
			return resp, domain.TierTextFallback
		}
		s.log.Warn().Err(err).Msg("text fallback failed, using heuristic")
	}

	return s.heuristic(in, scored), domain.TierHeuristic
}

// structured is tier 1: a schema-constrained call, unmarshalled and
// re-validated locally
func (s *Svc) structured(ctx context.Context, prompt string) (domain.ModelResponse, error) {
	raw, err := s.gen.GenerateObject(ctx, prompt, responseSchema)
	if err != nil {
		return domain.ModelResponse{}, err
	}
	return parseModelResponse(raw)
}

// textFallback is tier 2: freeform generation with a JSON-only instruction,
// fence-stripped and validated against the same rules as tier 1
func (s *Svc) textFallback(ctx context.Context, prompt string) (domain.ModelResponse, error) {
	raw, err := s.gen.GenerateText(ctx, prompt+
		"\nRespond with JSON only, matching {\"projects\":[...],\"reasoning\":\"...\",\"user_analysis\":\"...\"}. No prose, no markdown.")
	if err != nil {
		return domain.ModelResponse{}, err
	}
	return parseModelResponse(stripFences(raw))
}

// parseModelResponse unmarshals and schema-validates model output
func parseModelResponse(raw string) (domain.ModelResponse, error) {
	var out domain.ModelResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return domain.ModelResponse{}, perr.Wrapf(err, perr.ErrorCodeSchema, "model output is not valid JSON")
	}
	if err := bind.Get().Validator.Struct(out); err != nil {
		return domain.ModelResponse{}, perr.Wrapf(err, perr.ErrorCodeSchema, "model output failed schema validation")
	}
	return out, nil
}

// stripFences removes a markdown code fence wrapper when present
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
