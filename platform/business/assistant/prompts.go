package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"aprova.app/platform/model"
)

const profileResponseShape = `Answer with a single JSON object shaped like:
{
  "summary": "client profile summary",
  "target_persona": {"age_range": "", "interests": [], "pain_points": []},
  "content_strategy": {"post_frequency": "", "best_times": [], "content_mix": {}},
  "editorial_line": "suggested editorial line",
  "content_pillars": ["pillar"],
  "tone_of_voice": ["tone"],
  "keywords": ["keyword"]
}`

const planTemplate = `You are a strategic social media content planner.
Plan posts that follow the client's profile and editorial line.`

func profileSystemPrompt(template string, cfg model.AIConfig) string {
	behavior := cfg.Behavior
	if behavior == "" {
		behavior = "Professional and objective"
	}
	skills := cfg.Skills
	if skills == "" {
		skills = "Market analysis, content strategy"
	}
	return fmt.Sprintf("%s\n\nBehavior: %s\nSkills: %s\n\n%s", template, behavior, skills, profileResponseShape)
}

func profileUserPrompt(responses map[string]any) (string, error) {
	encoded, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return "", err
	}
	return "Briefing answers:\n" + string(encoded), nil
}

// planContext is the client context that shapes a monthly plan. It is part
// of the cache key, so plans for different quotas or pillars never collide.
type planContext struct {
	ClientName     string
	Month          string
	Period         model.PlanPeriod
	PostCount      int
	Summary        string
	ToneOfVoice    []string
	ContentPillars []string
	EditorialLine  string
	Templates      []string
}

func (c planContext) cacheContext(clientID string) map[string]any {
	return map[string]any{
		"client_id":       clientID,
		"month":           c.Month,
		"period":          string(c.Period),
		"monthly_quota":   c.PostCount,
		"summary":         c.Summary,
		"tone_of_voice":   c.ToneOfVoice,
		"content_pillars": c.ContentPillars,
		"editorial_line":  c.EditorialLine,
		"templates":       c.Templates,
	}
}

func planSystemPrompt(c planContext, cfg model.AIConfig) string {
	var sb strings.Builder
	sb.WriteString(planTemplate)
	sb.WriteString("\n\nCLIENT PROFILE:")
	if c.Summary != "" {
		fmt.Fprintf(&sb, "\n- Business: %s", c.Summary)
	}
	if len(c.ToneOfVoice) > 0 {
		fmt.Fprintf(&sb, "\n- Tone of voice: %s", strings.Join(c.ToneOfVoice, ", "))
	}
	if len(c.ContentPillars) > 0 {
		fmt.Fprintf(&sb, "\n- Content pillars: %s", strings.Join(c.ContentPillars, ", "))
	}
	if c.EditorialLine != "" {
		fmt.Fprintf(&sb, "\n\nEDITORIAL LINE:\n%s", c.EditorialLine)
	}
	if len(c.Templates) > 0 {
		sb.WriteString("\n\nREFERENCE TEMPLATES:")
		for i, name := range c.Templates {
			fmt.Fprintf(&sb, "\n[Template %d] %s", i+1, name)
		}
	}
	if cfg.Behavior != "" {
		fmt.Fprintf(&sb, "\n\nBehavior: %s", cfg.Behavior)
	}
	if cfg.Skills != "" {
		fmt.Fprintf(&sb, "\nSkills: %s", cfg.Skills)
	}
	fmt.Fprintf(&sb, "\n\nPlan %d posts for %s.", c.PostCount, periodLabel(c.Period))
	return sb.String()
}

func planUserPrompt(c planContext) string {
	return fmt.Sprintf(`Write %d complete posts for the client %s for %s.
For each post provide:
- title: post title (max 100 characters)
- date: suggested date (YYYY-MM-DD)
- type: feed, reels, story or carousel
- category: content category
- caption: full caption (100-300 words with hook, body, CTA and hashtags)
- hashtags: array of 5-10 relevant hashtags
- media_suggestion: description of the suggested media
Answer in JSON: {"posts": [{...}]}`, c.PostCount, c.ClientName, c.Month)
}

func periodLabel(p model.PlanPeriod) string {
	switch p {
	case model.PlanPeriodWeek:
		return "one week"
	case model.PlanPeriodFortnight:
		return "one fortnight"
	default:
		return "one month"
	}
}
