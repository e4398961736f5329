package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bizsite_server/internal/pipeline"
	"bizsite_server/internal/site"
	"bizsite_server/internal/templates"
	"bizsite_server/internal/types"
)

type stubRunner struct {
	res  *pipeline.Result
	err  error
	seen types.Questionnaire
}

func (s *stubRunner) Run(ctx context.Context, q types.Questionnaire) (*pipeline.Result, error) {
	s.seen = q
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}

func newTestRouter(t *testing.T, runner Runner) (*gin.Engine, *site.Writer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	catalog, err := templates.NewCatalog(logger)
	require.NoError(t, err)
	writer := site.NewWriter(t.TempDir(), logger)

	router := gin.New()
	RegisterRoutes(router, NewAPIHandler(runner, catalog, writer, logger))
	return router, writer
}

func validBody() map[string]string {
	return map[string]string{
		"business_name":    "Busy Bean",
		"description":      "We provide the best organic coffee for busy professionals",
		"services":         "Coffee, Pastries",
		"target_audience":  "busy professionals",
		"color_preference": "warm browns",
		"style_preference": "modern",
	}
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, &stubRunner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestListTemplates(t *testing.T) {
	router, _ := newTestRouter(t, &stubRunner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/templates", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TemplateListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.DefaultTemplateID, resp.Default)
	assert.Len(t, resp.Templates, 2)
}

func TestGenerateSiteSuccess(t *testing.T) {
	runner := &stubRunner{res: &pipeline.Result{
		RunID:    "run-1",
		Filename: "busy-bean-website.html",
		HTML:     "<html>Busy Bean</html>",
	}}
	router, writer := newTestRouter(t, runner)

	w := postJSON(router, "/api/generate", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, "busy-bean-website.html", resp.Filename)
	assert.Contains(t, resp.HTML, "Busy Bean")

	// The questionnaire reaches the runner with the default layout applied.
	assert.Equal(t, types.DefaultTemplateID, runner.seen.TemplateID)

	// The document was persisted and is downloadable.
	path, err := writer.Path("busy-bean-website.html")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestGenerateSiteValidationError(t *testing.T) {
	runner := &stubRunner{err: &types.ValidationError{Field: "services"}}
	router, _ := newTestRouter(t, runner)

	body := validBody()
	delete(body, "services")

	w := postJSON(router, "/api/generate", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required field: services")
}

func TestGenerateSiteShortDescription(t *testing.T) {
	runner := &stubRunner{}
	router, _ := newTestRouter(t, runner)

	body := validBody()
	body["description"] = "too short"

	w := postJSON(router, "/api/generate", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 20 characters")
	assert.Empty(t, runner.seen.BusinessName, "runner must not be invoked")
}

func TestGenerateSiteInternalError(t *testing.T) {
	runner := &stubRunner{err: errors.New("render exploded")}
	router, _ := newTestRouter(t, runner)

	w := postJSON(router, "/api/generate", validBody())
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate site")
	assert.NotContains(t, w.Body.String(), "render exploded")
}

func TestDownloadSite(t *testing.T) {
	router, writer := newTestRouter(t, &stubRunner{})
	_, err := writer.Save("Busy Bean", "<html>download me</html>")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/download/busy-bean-website.html", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "download me")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/download/missing.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
