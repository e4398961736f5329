package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizsite_server/internal/pipeline"
	"bizsite_server/internal/site"
	"bizsite_server/internal/templates"
	"bizsite_server/internal/types"
)

// minDescriptionLength guards against inputs too thin to generate from.
const minDescriptionLength = 20

// Runner runs one generation end to end. Satisfied by *pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context, q types.Questionnaire) (*pipeline.Result, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	runner  Runner
	catalog *templates.Catalog
	writer  *site.Writer
	logger  *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(runner Runner, catalog *templates.Catalog, writer *site.Writer, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		runner:  runner,
		catalog: catalog,
		writer:  writer,
		logger:  logger,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	BusinessName    string `json:"business_name"`
	Description     string `json:"description"`
	Services        string `json:"services"`
	TargetAudience  string `json:"target_audience"`
	ColorPreference string `json:"color_preference"`
	StylePreference string `json:"style_preference"`
	ContactInfo     string `json:"contact_info"`
	TemplateID      string `json:"template_id"`
}

type GenerateResponse struct {
	RunID    string         `json:"run_id"`
	Filename string         `json:"filename"`
	HTML     string         `json:"html"`
	Analysis types.Analysis `json:"analysis"`
	Design   types.Design   `json:"design"`
	Content  types.Content  `json:"content"`
	Images   types.Images   `json:"images"`
}

type TemplateListResponse struct {
	Templates []templates.Info `json:"templates"`
	Default   string           `json:"default"`
}

// --- API Handlers ---

// GET /api/health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/templates
func (h *APIHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, TemplateListResponse{
		Templates: h.catalog.List(),
		Default:   types.DefaultTemplateID,
	})
}

// POST /api/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if len(strings.TrimSpace(req.Description)) > 0 &&
		len(strings.TrimSpace(req.Description)) < minDescriptionLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "description must be at least 20 characters",
		})
		return
	}

	q := types.Questionnaire{
		BusinessName:    req.BusinessName,
		Description:     req.Description,
		Services:        req.Services,
		TargetAudience:  req.TargetAudience,
		ColorPreference: req.ColorPreference,
		StylePreference: req.StylePreference,
		ContactInfo:     req.ContactInfo,
		TemplateID:      req.TemplateID,
	}
	if q.TemplateID == "" {
		q.TemplateID = types.DefaultTemplateID
	}

	res, err := h.runner.Run(c.Request.Context(), q)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("site generation failed",
			zap.String("business", req.BusinessName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	if _, err := h.writer.Save(q.BusinessName, res.HTML); err != nil {
		h.logger.Error("saving generated site failed",
			zap.String("run_id", res.RunID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store generated site"})
		return
	}

	c.JSON(http.StatusCreated, GenerateResponse{
		RunID:    res.RunID,
		Filename: res.Filename,
		HTML:     res.HTML,
		Analysis: res.Analysis,
		Design:   res.Design,
		Content:  res.Content,
		Images:   res.Images,
	})
}

// GET /api/download/:filename
func (h *APIHandler) DownloadSite(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.writer.Path(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.FileAttachment(path, filename)
}
