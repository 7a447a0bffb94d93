package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/taxonomy"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	tax := taxonomy.New(map[string]map[string][]string{
		"AI/ML Intern":   {"Python": {"python"}, "TensorFlow": {"tensorflow"}},
		"Backend Intern": {"Go": {"go", "golang"}},
	})
	uc := usecase.NewAnalysisUsecase(
		tax,
		service.NewSkillDetector(),
		service.NewSimilarityScorer(),
		service.NewFormattingChecker(),
		service.NewSectionParser(),
		service.NewImpactAnalyzer(),
	)
	app := fiber.New()
	NewAnalyzeHandler(uc).RegisterRoutes(app)
	return app
}

func analyzeRequest(t *testing.T, fileName, fileContent, role, jd string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("resume", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(fileContent))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("role", role))
	require.NoError(t, w.WriteField("job_description", jd))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAnalyze_Success(t *testing.T) {
	app := newTestApp()

	req := analyzeRequest(t, "resume.txt",
		"Built ML models using Python and scikit-learn for classification tasks",
		"AI/ML Intern", "Internship using Python and TensorFlow")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"Python"}, data["matched_skills"])
	assert.Equal(t, []any{"TensorFlow"}, data["missing_skills"])
}

func TestAnalyze_UnknownRole(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(analyzeRequest(t, "resume.txt", "Python developer", "Quant Trader", "jd"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "unknown role")
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(analyzeRequest(t, "resume.png", "image bytes", "AI/ML Intern", "jd"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyze_EmptyJobDescription(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(analyzeRequest(t, "resume.txt", "Python developer", "AI/ML Intern", "   "))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "job description is empty")
}

func TestAnalyze_CorruptedUpload(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(analyzeRequest(t, "resume.pdf", "not a real pdf", "AI/ML Intern", "jd"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAnalyze_MissingFile(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoles(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/roles", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"AI/ML Intern", "Backend Intern"}, data["roles"])
}
