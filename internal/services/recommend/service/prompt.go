package service

import (
	"fmt"
	"strings"

	"reposcout/internal/core/fusion"
	str "reposcout/internal/platform/strings"
	"reposcout/internal/services/recommend/domain"
)

// buildPrompt assembles the grounding document strictly from fetched data.
// The model is instructed to select only from the supplied candidates; it
// must never invent repositories
func (s *Svc) buildPrompt(in domain.GenerateInput, g gathered, scored []fusion.Scored) string {
	var b strings.Builder

	b.WriteString("You are an open-source recommendation assistant. ")
	b.WriteString("Select the best repositories for this developer STRICTLY from the candidate list below. ")
	b.WriteString("Never invent a repository and never alter a URL.\n\n")

	if in.Query != "" {
		fmt.Fprintf(&b, "Request: %s\n", str.Truncate(in.Query, 300))
	}
	if in.Language != "" {
		fmt.Fprintf(&b, "Preferred language: %s\n", in.Language)
	}
	if in.Difficulty != "" {
		fmt.Fprintf(&b, "Desired difficulty: %s\n", in.Difficulty)
	}

	if g.profileOK {
		fmt.Fprintf(&b, "\nDeveloper profile: %s, experience %s, contribution frequency %s\n",
			g.profile.Username, g.profile.Level, g.profile.Frequency)
		if len(g.profile.Languages) > 0 {
			fmt.Fprintf(&b, "Languages used: %s\n", joinLangs(g.profile.Languages))
		}
		if g.profile.Bio != "" {
			fmt.Fprintf(&b, "Bio: %s\n", str.Truncate(g.profile.Bio, 200))
		}
	}

	if g.cultural.Available {
		fmt.Fprintf(&b, "\nCultural interest tags: %s\n", strings.Join(g.cultural.Tags, ", "))
		if rel := g.cultural.RelatedTagNames(); len(rel) > 0 {
			fmt.Fprintf(&b, "Related interests from the taste graph: %s\n", strings.Join(rel, ", "))
		}
		for _, d := range g.cultural.Demographics {
			fmt.Fprintf(&b, "Demographic affinity: age %s, skew %s, affinity %.2f\n", d.AgeBracket, d.GenderSkew, d.Affinity)
		}
	}

	b.WriteString("\nCandidates (ranked by cultural alignment):\n")
	for i, c := range scored {
		fmt.Fprintf(&b, "%d. %s | language=%s | stars=%d | cultural_score=%.2f | topics=%s | url=https://github.com/%s\n",
			i+1, c.FullName, c.Language, c.Stars, c.CulturalScore, strings.Join(c.Topics, ","), c.FullName)
	}

	b.WriteString("\nReturn up to 3 recommendations with an explanation for each, ")
	b.WriteString("overall reasoning, and a short analysis of the developer.\n")
	return b.String()
}

func joinLangs(langs map[string]int) string {
	out := make([]string, 0, len(langs))
	for l := range langs {
		out = append(out, l)
	}
	return strings.Join(str.Dedupe(out), ", ")
}
