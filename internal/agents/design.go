package agents

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bizsite_server/internal/agents/prompts"
	"bizsite_server/internal/llm"
	"bizsite_server/internal/types"
)

// DesignAgent produces the design-token record from the questionnaire and
// the analysis stage's output.
type DesignAgent struct {
	caller llm.Caller
	logger *zap.Logger
}

func NewDesignAgent(caller llm.Caller, logger *zap.Logger) *DesignAgent {
	return &DesignAgent{caller: caller, logger: logger}
}

func (a *DesignAgent) SuggestDesign(ctx context.Context, q types.Questionnaire, analysis types.Analysis) types.Design {
	tone := analysis.ToneOfVoice
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(prompts.DesignPrompt(),
		q.BusinessName, q.Description, q.TargetAudience,
		q.ColorPreference, q.StylePreference, tone)

	text, err := a.caller.Call(ctx, prompt, prompts.DesignSystemPrompt(), llm.DefaultMaxAttempts)
	if err != nil {
		a.logger.Warn("design generation failed, using fallback", zap.Error(err))
		return FallbackDesign()
	}

	var design types.Design
	if !llm.Unmarshal(text, &design) {
		a.logger.Warn("could not extract design record from model output, using fallback",
			zap.String("output_prefix", truncate(text, 200)))
		return FallbackDesign()
	}
	return design
}

// FallbackDesign is the fixed token set used when generation fails. It is
// independent of the questionnaire so rendering stays predictable.
func FallbackDesign() types.Design {
	return types.Design{
		PrimaryColor:      "#2c3e50",
		SecondaryColor:    "#3498db",
		AccentColor:       "#e74c3c",
		BackgroundColor:   "#ffffff",
		TextColor:         "#333333",
		GradientPrimary:   "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		GradientSecondary: "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		FontFamily:        "'Inter', 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
		HeadingFont:       "'Playfair Display', 'Georgia', serif",
		LayoutStyle:       "modern with animations and interactions",
		VisualElements: []string{
			"Smooth hover animations",
			"Glassmorphism cards",
			"Gradient backgrounds",
			"Interactive buttons",
		},
		AnimationStyle:  "smooth and engaging",
		CardStyle:       "glassmorphism with shadows",
		ButtonStyle:     "animated with hover effects",
		NavigationStyle: "fixed with backdrop blur",
		HeroStyle:       "animated gradient background with floating elements",
	}
}
