package controller

import (
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"
	"career_guidance_backend/pkg/monitoring"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	ReportService     *service.ReportService
}

func NewAssessmentController(assessmentService *service.AssessmentService, reportService *service.ReportService) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		ReportService:     reportService,
	}
}

// GetQuestions godoc
// @Summary Assessment questions
// @Description Returns the ordered question bank
// @Tags assessment
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "success"
// @Router /assessment/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, gin.H{"questions": c.AssessmentService.Questions()})
}

// swagger:model SubmitAssessmentRequest
type SubmitAssessmentRequest struct {
	Responses []SubmittedResponse `json:"responses" binding:"required,dive"`
}

type SubmittedResponse struct {
	QuestionID int    `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Category   string `json:"category" binding:"required"`
}

// Submit godoc
// @Summary Submit the assessment
// @Description Scores the responses, stores the result and credits XP
// @Tags assessment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitAssessmentRequest true "ordered responses"
// @Success 200 {object} util.Response{data=service.SubmissionOutcome} "success"
// @Failure 400 {object} util.Response "validation error"
// @Failure 409 {object} util.Response "assessment already completed"
// @Router /assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	responses := make([]scoring.Response, len(req.Responses))
	for i, r := range req.Responses {
		responses[i] = scoring.Response{
			QuestionID: r.QuestionID,
			Answer:     r.Answer,
			Category:   scoring.Category(r.Category),
		}
	}

	outcome, err := c.AssessmentService.Submit(claims.UserID, responses)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrResponseCount),
			errors.Is(err, scoring.ErrUnknownCategory),
			errors.Is(err, scoring.ErrUnknownQuestion),
			errors.Is(err, scoring.ErrDuplicateResponse):
			monitoring.AssessmentSubmissions.WithLabelValues("rejected").Inc()
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrAssessmentTaken):
			monitoring.AssessmentSubmissions.WithLabelValues("duplicate").Inc()
			util.Conflict(ctx, "Assessment already completed")
		default:
			monitoring.AssessmentSubmissions.WithLabelValues("error").Inc()
			util.Error(ctx, 500, "Assessment could not be completed")
		}
		return
	}

	monitoring.AssessmentSubmissions.WithLabelValues("completed").Inc()
	util.Success(ctx, outcome)
}

// GetResult godoc
// @Summary Fetch one assessment result
// @Description Owner or admin only
// @Tags assessment
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "result id"
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 403 {object} util.Response "forbidden"
// @Failure 404 {object} util.Response "not found"
// @Router /assessment/results/{id} [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid result id")
		return
	}

	result, err := c.AssessmentService.Result(uint(id), claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx, "Assessment result not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"result": result})
}

// MyResult godoc
// @Summary Latest result of the current user
// @Tags assessment
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 404 {object} util.Response "no assessment completed yet"
// @Router /assessment/my-result [get]
func (c *AssessmentController) MyResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.AssessmentService.LatestResult(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx, "No assessment completed yet")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"result": result})
}

// DownloadReport godoc
// @Summary Download a PDF career report
// @Description Owner or admin only
// @Tags assessment
// @Produce  application/pdf
// @Security ApiKeyAuth
// @Param   id path int true "result id"
// @Success 200 {file} binary "PDF report"
// @Failure 403 {object} util.Response "forbidden"
// @Failure 404 {object} util.Response "not found"
// @Router /assessment/results/{id}/report [get]
func (c *AssessmentController) DownloadReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid result id")
		return
	}

	result, err := c.AssessmentService.Result(uint(id), claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx, "Assessment result not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	pdfBytes, err := c.ReportService.RenderPDF(result)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	name := ""
	if result.User != nil {
		name = result.User.Name
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+service.ReportFilename(name)+`"`)
	ctx.Data(200, util.MimePDF, pdfBytes)
}
