package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bizsite_server/internal/agents/prompts"
	"bizsite_server/internal/llm"
	"bizsite_server/internal/types"
)

// ContentAgent produces the page-copy record from the questionnaire and the
// analysis stage's output.
type ContentAgent struct {
	caller llm.Caller
	logger *zap.Logger
}

func NewContentAgent(caller llm.Caller, logger *zap.Logger) *ContentAgent {
	return &ContentAgent{caller: caller, logger: logger}
}

func (a *ContentAgent) GenerateContent(ctx context.Context, q types.Questionnaire, analysis types.Analysis) types.Content {
	tone := analysis.ToneOfVoice
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(prompts.ContentPrompt(),
		q.BusinessName, q.Description,
		strings.Join(q.ServiceList(), ", "), q.TargetAudience,
		strings.Join(analysis.KeyStrengths, ", "),
		analysis.UniqueValueProposition, tone)

	text, err := a.caller.Call(ctx, prompt, prompts.ContentSystemPrompt(), llm.DefaultMaxAttempts)
	if err != nil {
		a.logger.Warn("content generation failed, using fallback", zap.Error(err))
		return FallbackContent(q)
	}

	var content types.Content
	if !llm.Unmarshal(text, &content) {
		a.logger.Warn("could not extract content record from model output, using fallback",
			zap.String("output_prefix", truncate(text, 200)))
		return FallbackContent(q)
	}
	return content
}

// FallbackContent builds the deterministic copy record from the
// questionnaire alone. At most three service entries are kept, matching the
// image stage's per-service limit.
func FallbackContent(q types.Questionnaire) types.Content {
	services := q.ServiceList()
	if len(services) > 3 {
		services = services[:3]
	}
	items := make([]types.ServiceItem, 0, len(services))
	for _, s := range services {
		items = append(items, types.ServiceItem{
			Name:        s,
			Description: fmt.Sprintf("Professional %s services", strings.ToLower(s)),
		})
	}

	return types.Content{
		HeroHeadline: fmt.Sprintf("Welcome to %s", q.BusinessName),
		HeroSubtext:  q.Description,
		HeroCTA:      "Get Started",
		AboutTitle:   "About Us",
		AboutText: fmt.Sprintf("%s is dedicated to providing exceptional service to %s.",
			q.BusinessName, q.TargetAudience),
		ServicesTitle:   "Our Services",
		ServicesIntro:   "We offer comprehensive services tailored to your needs:",
		ServiceItems:    items,
		CTASectionTitle: "Ready to Get Started?",
		CTAText:         "Contact us today to learn more about our services.",
		CTAButton:       "Contact Us",
		FooterText: fmt.Sprintf("© %d %s. Professional services you can trust.",
			time.Now().Year(), q.BusinessName),
	}
}
