// Package agents implements the pipeline stages. Each text stage builds a
// prompt from the questionnaire and prior records, asks the model, extracts
// the record from its answer, and substitutes a deterministic fallback when
// generation fails — stages never fail the pipeline themselves.
package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bizsite_server/internal/agents/prompts"
	"bizsite_server/internal/llm"
	"bizsite_server/internal/types"
)

// AnalysisAgent produces the business-analysis record.
type AnalysisAgent struct {
	caller llm.Caller
	logger *zap.Logger
}

func NewAnalysisAgent(caller llm.Caller, logger *zap.Logger) *AnalysisAgent {
	return &AnalysisAgent{caller: caller, logger: logger}
}

// Analyze always returns a fully populated record.
func (a *AnalysisAgent) Analyze(ctx context.Context, q types.Questionnaire) types.Analysis {
	prompt := fmt.Sprintf(prompts.AnalysisPrompt(),
		q.BusinessName, q.Description, q.Services, q.TargetAudience)

	text, err := a.caller.Call(ctx, prompt, prompts.AnalysisSystemPrompt(), llm.DefaultMaxAttempts)
	if err != nil {
		a.logger.Warn("business analysis generation failed, using fallback", zap.Error(err))
		return FallbackAnalysis(q)
	}

	var analysis types.Analysis
	if !llm.Unmarshal(text, &analysis) {
		a.logger.Warn("could not extract analysis record from model output, using fallback",
			zap.String("output_prefix", truncate(text, 200)))
		return FallbackAnalysis(q)
	}
	return analysis
}

// FallbackAnalysis builds the deterministic record used when generation
// fails. It depends only on the questionnaire.
func FallbackAnalysis(q types.Questionnaire) types.Analysis {
	return types.Analysis{
		KeyStrengths:  []string{"Quality service", "Customer focus", "Expertise"},
		CustomerNeeds: []string{"Reliable solutions", "Professional service", "Value for money"},
		UniqueValueProposition: fmt.Sprintf("%s provides exceptional service tailored to %s",
			q.BusinessName, q.TargetAudience),
		ToneOfVoice:           "professional",
		CompetitiveAdvantages: []string{"Experience", "Customer satisfaction"},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
