package service

import (
	"archive/zip"
	"bytes"
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/util"
	"career_guidance_backend/pkg/logger"
	"career_guidance_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// ReportService renders assessment results as PDF documents and bundles
// them into ZIP archives for bulk export.
type ReportService struct {
	Storage *StorageService
}

func NewReportService(storage *StorageService) *ReportService {
	return &ReportService{Storage: storage}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ReportFilename builds the attachment filename for one student.
func ReportFilename(studentName string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(studentName), "-"))
	if slug == "" {
		slug = "student"
	}
	return fmt.Sprintf("career-report-%s.pdf", slug)
}

// RenderPDF turns one assessment result into a PDF byte stream.
func (s *ReportService) RenderPDF(result *model.AssessmentResult) ([]byte, error) {
	var profile scoring.CareerProfile
	if err := json.Unmarshal(result.CareerProfile, &profile); err != nil {
		return nil, fmt.Errorf("decode career profile: %w", err)
	}
	var responses []model.ResponseRecord
	if err := json.Unmarshal(result.Responses, &responses); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Career Guidance Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Career Guidance Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	if result.User != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Student: %s", result.User.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Email: %s", result.User.Email), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %s", result.CompletedAt.Format(util.DateFormat)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Dominant Type: %s", titleCase(string(profile.DominantType))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}

	section("Strengths")
	for _, strength := range profile.Strengths {
		pdf.CellFormat(0, 5, "- "+strength, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	section("Recommended Careers")
	for _, career := range profile.RecommendedCareers {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s (%d%% match)", career.Title, career.MatchPercentage), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, career.Description, "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(2)

	section("Suggested Study Areas")
	for _, area := range profile.SuggestedStudyAreas {
		pdf.CellFormat(0, 5, "- "+area, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	section("Assessment Responses")
	for i, response := range responses {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, response.Question), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("Answer: %s (%s)", response.Answer, response.Category), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	monitoring.ReportsGenerated.WithLabelValues("pdf").Inc()
	return buf.Bytes(), nil
}

// RenderBulkZIP renders one PDF per result and bundles them. The archive
// is also written to the storage backend under a fresh key; a failed
// archive upload is logged but does not fail the export.
func (s *ReportService) RenderBulkZIP(ctx context.Context, results []model.AssessmentResult) ([]byte, error) {
	if len(results) == 0 {
		return nil, util.ErrNoCompletedAssessments
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i := range results {
		result := &results[i]
		pdfBytes, err := s.RenderPDF(result)
		if err != nil {
			return nil, fmt.Errorf("render report for result %d: %w", result.ID, err)
		}

		name := "student"
		if result.User != nil {
			name = result.User.Name
		}
		entry := fmt.Sprintf("career-report-%s-%d.pdf", strings.ToLower(strings.Join(strings.Fields(name), "-")), result.ID)
		w, err := zw.Create(entry)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(pdfBytes); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	monitoring.ReportsGenerated.WithLabelValues("zip").Inc()

	if s.Storage != nil {
		key := fmt.Sprintf("reports/%s.zip", uuid.New().String())
		if _, err := s.Storage.Upload(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), util.MimeZIP); err != nil {
			logger.Log.Warn("failed to archive bulk report export", zap.String("key", key), zap.Error(err))
		}
	}

	return buf.Bytes(), nil
}
