package handler

import (
	"errors"
	"io"
	"time"

	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024

type AnalyzeHandler struct {
	uc *usecase.AnalysisUsecase
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze", middleware.RateLimiter(10, 1*time.Minute), h.Analyze)
	app.Get("/roles", h.Roles)
}

// Analyze accepts a multipart form with a resume file, a role and a
// job_description field, runs one synchronous analysis and returns the
// full report.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	format, err := util.DetectFormat(file.Filename)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, err)
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot open resume file",
		}, err)
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}

	role := c.FormValue("role")
	jdText := c.FormValue("job_description")

	report, err := h.uc.Analyze(fileBytes, format, file.Filename, role, jdText)
	if err != nil {
		return analysisErrorResponse(c, err)
	}

	data := dto.AnalysisReportDTO{
		ID:             report.ID,
		Role:           report.Role,
		Score:          report.Score,
		MatchedSkills:  report.MatchedSkills,
		MissingSkills:  report.MissingSkills,
		ExtraSkills:    report.ExtraSkills,
		Evidence:       report.Evidence,
		FormattingTips: report.FormattingTips,
		Keywords:       report.Keywords,
		Sections:       report.Sections,
		Impact:         report.Impact,
		RoleMatches:    report.RoleMatches,
		CreatedAt:      report.CreatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success analyze resume",
		Data:    data,
	})
}

func (h *AnalyzeHandler) Roles(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get roles",
		Data:    fiber.Map{"roles": h.uc.Roles()},
	})
}

// analysisErrorResponse maps the tagged analysis error kinds to HTTP
// statuses. Every kind is recoverable; the client may retry with new
// input.
func analysisErrorResponse(c *fiber.Ctx, err error) error {
	var (
		unknownRole   *usecase.UnknownRoleError
		emptyInput    *usecase.EmptyInputError
		unsupported   *util.UnsupportedFormatError
		extractionErr *util.ExtractionError
	)
	switch {
	case errors.As(err, &unknownRole):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, err)
	case errors.As(err, &emptyInput):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, err)
	case errors.As(err, &unsupported):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, err)
	case errors.As(err, &extractionErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: err.Error(),
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to analyze resume",
		}, err)
	}
}
