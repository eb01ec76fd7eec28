package controller

import (
	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService  *service.AdminService
	ReportService *service.ReportService
}

func NewAdminController(adminService *service.AdminService, reportService *service.ReportService) *AdminController {
	return &AdminController{
		AdminService:  adminService,
		ReportService: reportService,
	}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Student totals, completion rate and recent submissions
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardPayload} "success"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	payload, err := c.AdminService.Dashboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, payload)
}

// Students godoc
// @Summary List students
// @Description Paginated, filterable by completion status, searchable by name or email
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "page (default 1)"
// @Param   limit query int false "page size (default 10)"
// @Param   status query string false "all | completed | pending"
// @Param   search query string false "name/email search term"
// @Success 200 {object} util.Response{data=util.PageResponse} "success"
// @Router /admin/students [get]
func (c *AdminController) Students(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	status := ctx.DefaultQuery("status", "all")
	search := ctx.Query("search")

	students, total, err := c.AdminService.Students(page, limit, status, search)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  students,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Student godoc
// @Summary Student details
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "student id"
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 404 {object} util.Response "student not found"
// @Router /admin/students/{id} [get]
func (c *AdminController) Student(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	student, err := c.AdminService.Student(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "Student not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"student": student})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Removes the student and their assessment results
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "student id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "student not found"
// @Router /admin/students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	if err := c.AdminService.DeleteStudent(uint(id)); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "Student not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Student deleted successfully"})
}

// StudentReport godoc
// @Summary Download one student's PDF report
// @Tags admin
// @Produce  application/pdf
// @Security ApiKeyAuth
// @Param   id path int true "student id"
// @Success 200 {file} binary "PDF report"
// @Failure 404 {object} util.Response "student or result not found"
// @Router /admin/students/{id}/report [get]
func (c *AdminController) StudentReport(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	student, err := c.AdminService.Student(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "Student not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if student.AssessmentResult == nil {
		util.NotFound(ctx, "Student has not completed assessment")
		return
	}
	result := student.AssessmentResult
	result.User = student

	pdfBytes, err := c.ReportService.RenderPDF(result)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+service.ReportFilename(student.Name)+`"`)
	ctx.Data(200, util.MimePDF, pdfBytes)
}

// BulkReports godoc
// @Summary Bulk export reports
// @Description ZIP archive with one PDF per completed assessment
// @Tags admin
// @Produce  application/zip
// @Security ApiKeyAuth
// @Success 200 {file} binary "ZIP archive"
// @Failure 404 {object} util.Response "no completed assessments"
// @Router /admin/reports/bulk [get]
func (c *AdminController) BulkReports(ctx *gin.Context) {
	results, err := c.AdminService.ResultRepo.ListCompleted()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	zipBytes, err := c.ReportService.RenderBulkZIP(ctx.Request.Context(), results)
	if err != nil {
		if errors.Is(err, util.ErrNoCompletedAssessments) {
			util.NotFound(ctx, "No completed assessments found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	filename := "career-reports-bulk-" + time.Now().Format(util.DateFormat) + ".zip"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, util.MimeZIP, zipBytes)
}

// Analytics godoc
// @Summary Assessment analytics
// @Description Dominant-type distribution and 30-day completion trend
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AnalyticsPayload} "success"
// @Router /admin/analytics/assessments [get]
func (c *AdminController) Analytics(ctx *gin.Context) {
	payload, err := c.AdminService.Analytics(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, payload)
}
