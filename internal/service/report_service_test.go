package service

import (
	"archive/zip"
	"bytes"
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/scoring"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T, id uint, name string) model.AssessmentResult {
	t.Helper()

	engine, err := scoring.NewEngine(scoring.DefaultBank(), scoring.DefaultCareerTable())
	require.NoError(t, err)

	profile, xp, err := engine.Score([]scoring.Response{
		{QuestionID: 1, Answer: "Analyzing data and solving complex problems", Category: scoring.Analytical},
		{QuestionID: 2, Answer: "Focus on research and technical details", Category: scoring.Technical},
		{QuestionID: 3, Answer: "An office where you can analyze data and strategies", Category: scoring.Analytical},
	})
	require.NoError(t, err)

	profileJSON, err := json.Marshal(profile)
	require.NoError(t, err)
	responsesJSON, err := json.Marshal([]model.ResponseRecord{
		{Question: "What type of activities do you enjoy most?", Answer: "Analyzing data and solving complex problems", Category: "analytical"},
		{Question: "In a group project, you prefer to:", Answer: "Focus on research and technical details", Category: "technical"},
		{Question: "Your ideal work environment would be:", Answer: "An office where you can analyze data and strategies", Category: "analytical"},
	})
	require.NoError(t, err)

	user := &model.User{Name: name, Email: "student@example.com", Role: model.Student}
	user.ID = id

	result := model.AssessmentResult{
		UserID:           id,
		User:             user,
		Responses:        responsesJSON,
		CareerProfile:    profileJSON,
		DominantType:     string(profile.DominantType),
		ExperienceGained: xp,
		CompletedAt:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	result.ID = id
	return result
}

func TestRenderPDF(t *testing.T) {
	svc := NewReportService(nil)
	result := sampleResult(t, 1, "Grace Hopper")

	pdfBytes, err := svc.RenderPDF(&result)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")), "output should start with PDF magic")
}

func TestRenderPDFRejectsCorruptProfile(t *testing.T) {
	svc := NewReportService(nil)
	result := sampleResult(t, 1, "Grace Hopper")
	result.CareerProfile = []byte("{not json")

	_, err := svc.RenderPDF(&result)
	assert.Error(t, err)
}

func TestRenderBulkZIP(t *testing.T) {
	svc := NewReportService(nil)
	results := []model.AssessmentResult{
		sampleResult(t, 1, "Grace Hopper"),
		sampleResult(t, 2, "Alan Turing"),
		sampleResult(t, 3, "Katherine Johnson"),
	}

	zipBytes, err := svc.RenderBulkZIP(context.Background(), results)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	require.NoError(t, err)
	require.Len(t, reader.File, 3)
	assert.Equal(t, "career-report-grace-hopper-1.pdf", reader.File[0].Name)
	assert.Equal(t, "career-report-alan-turing-2.pdf", reader.File[1].Name)
}

func TestRenderBulkZIPEmpty(t *testing.T) {
	svc := NewReportService(nil)
	_, err := svc.RenderBulkZIP(context.Background(), nil)
	assert.Error(t, err)
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "career-report-grace-hopper.pdf", ReportFilename("Grace Hopper"))
	assert.Equal(t, "career-report-ada.pdf", ReportFilename("  Ada "))
	assert.Equal(t, "career-report-student.pdf", ReportFilename(""))
}
