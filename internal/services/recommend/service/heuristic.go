package service

import (
	"fmt"

	"reposcout/internal/core/fusion"
	"reposcout/internal/services/recommend/domain"
)

// heuristicCap is how many candidates the deterministic tier promotes
const heuristicCap = 3

// heuristic is tier 3: build a minimal valid response directly from the
// ranked candidate list, bypassing the model entirely. Deterministic and
// always succeeds for a non-empty list
func (s *Svc) heuristic(in domain.GenerateInput, scored []fusion.Scored) domain.ModelResponse {
	n := len(scored)
	if n > heuristicCap {
		n = heuristicCap
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = "intermediate"
	}

	projects := make([]domain.ModelProject, 0, n)
	for i := 0; i < n; i++ {
		c := scored[i]
		projects = append(projects, domain.ModelProject{
			Name:              c.FullName,
			URL:               "https://github.com/" + c.FullName,
			Languages:         languagesOf(c),
			Topics:            c.Topics,
			Stars:             c.Stars,
			Difficulty:        difficulty,
			Explanation:       heuristicExplanation(c),
			ContributionTypes: contributionTypes(c),
			Score:             70 + 5*i,
		})
	}

	return domain.ModelResponse{
		Projects:     projects,
		Reasoning:    "Ranked by cultural alignment with your technical profile; generated without model assistance.",
		UserAnalysis: "",
	}
}

func heuristicExplanation(c fusion.Scored) string {
	if len(c.MatchedTags) > 0 {
		return fmt.Sprintf("%s aligns with your interests (%s) and is an active project with %d stars.",
			c.FullName, joinMax(c.MatchedTags, 3), c.Stars)
	}
	return fmt.Sprintf("%s is a well-regarded project with %d stars that matches your search.", c.FullName, c.Stars)
}

// contributionTypes infers how a newcomer would plug in
func contributionTypes(c fusion.Scored) []string {
	var out []string
	for _, t := range c.Topics {
		switch t {
		case "good-first-issue", "good-first-issues", "beginner-friendly":
			out = append(out, "good first issue")
		case "documentation", "docs":
			out = append(out, "documentation")
		}
	}
	if len(out) == 0 {
		out = append(out, "code")
	}
	return out
}

func languagesOf(c fusion.Scored) []string {
	if c.Language == "" {
		return nil
	}
	return []string{c.Language}
}

func joinMax(in []string, n int) string {
	if len(in) > n {
		in = in[:n]
	}
	out := ""
	for i, s := range in {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
