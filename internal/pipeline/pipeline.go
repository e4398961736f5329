// Package pipeline orchestrates the generation stages in a strict linear
// order and accumulates their records into the final result.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bizsite_server/internal/agents"
	"bizsite_server/internal/site"
	"bizsite_server/internal/templates"
	"bizsite_server/internal/types"
)

// Stage names a pipeline state. Runs advance through the stages in order and
// end in StageDone or StageError.
type Stage string

const (
	StageAnalyze Stage = "analyze"
	StageDesign  Stage = "design"
	StageContent Stage = "content"
	StageImages  Stage = "images"
	StageRender  Stage = "render"
	StageDone    Stage = "done"
	StageError   Stage = "error"
)

// Result carries the rendered document plus every intermediate record of one
// run.
type Result struct {
	RunID    string
	Filename string
	HTML     string
	Analysis types.Analysis
	Design   types.Design
	Content  types.Content
	Images   types.Images
}

// Pipeline holds the stage agents and the renderer. It is constructed
// explicitly with its collaborators; there is no package-level instance.
type Pipeline struct {
	analysis *agents.AnalysisAgent
	design   *agents.DesignAgent
	content  *agents.ContentAgent
	images   *agents.ImageAgent
	renderer *templates.Renderer
	logger   *zap.Logger
}

func New(analysis *agents.AnalysisAgent, design *agents.DesignAgent,
	content *agents.ContentAgent, images *agents.ImageAgent,
	renderer *templates.Renderer, logger *zap.Logger) *Pipeline {

	return &Pipeline{
		analysis: analysis,
		design:   design,
		content:  content,
		images:   images,
		renderer: renderer,
		logger:   logger,
	}
}

// Run validates the questionnaire and advances through the stages. The
// generation stages cannot fail the run: each degrades to its deterministic
// fallback record. Only validation, context cancellation, and the render
// stage can produce an error, and the error names the stage that failed.
func (p *Pipeline) Run(ctx context.Context, q types.Questionnaire) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    uuid.New().String(),
		Filename: site.Filename(q.BusinessName),
	}
	logger := p.logger.With(
		zap.String("run_id", res.RunID),
		zap.String("business", q.BusinessName))
	logger.Info("generation run started", zap.String("template_id", q.TemplateID))

	stage := StageAnalyze
	for stage != StageDone {
		if err := ctx.Err(); err != nil {
			logger.Warn("run aborted", zap.String("stage", string(stage)), zap.Error(err))
			return nil, fmt.Errorf("stage %s: %w", stage, err)
		}
		logger.Debug("entering stage", zap.String("stage", string(stage)))

		switch stage {
		case StageAnalyze:
			res.Analysis = p.analysis.Analyze(ctx, q)
			stage = StageDesign
		case StageDesign:
			res.Design = p.design.SuggestDesign(ctx, q, res.Analysis)
			stage = StageContent
		case StageContent:
			res.Content = p.content.GenerateContent(ctx, q, res.Analysis)
			stage = StageImages
		case StageImages:
			res.Images = p.images.FetchImages(ctx, q, res.Content)
			stage = StageRender
		case StageRender:
			html, err := p.renderer.Render(q, res.Design, res.Content, res.Images)
			if err != nil {
				logger.Error("render stage failed", zap.Error(err))
				return nil, fmt.Errorf("stage %s: %w", StageRender, err)
			}
			res.HTML = html
			stage = StageDone
		}
	}

	logger.Info("generation run finished",
		zap.String("filename", res.Filename),
		zap.Int("document_bytes", len(res.HTML)))
	return res, nil
}
