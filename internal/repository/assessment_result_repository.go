package repository

import (
	"career_guidance_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AssessmentResultRepository struct {
	DB *gorm.DB
}

func NewAssessmentResultRepository(db *gorm.DB) *AssessmentResultRepository {
	return &AssessmentResultRepository{DB: db}
}

func (r *AssessmentResultRepository) Create(result *model.AssessmentResult) error {
	return r.DB.Create(result).Error
}

func (r *AssessmentResultRepository) FindByID(id uint) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.DB.Preload("User").First(&result, id).Error
	return &result, err
}

func (r *AssessmentResultRepository) FindLatestByUser(userID uint) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.DB.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&result).Error
	return &result, err
}

// ListCompleted returns every result belonging to a completed student,
// newest first, with the owning user loaded. Used by the bulk export.
func (r *AssessmentResultRepository) ListCompleted() ([]model.AssessmentResult, error) {
	var results []model.AssessmentResult
	err := r.DB.Preload("User").
		Joins("JOIN users ON users.id = assessment_results.user_id").
		Where("users.role = ? AND users.assessment_completed = ? AND users.deleted_at IS NULL", model.Student, true).
		Order("assessment_results.created_at desc").
		Find(&results).Error
	return results, err
}

func (r *AssessmentResultRepository) Recent(limit int) ([]model.AssessmentResult, error) {
	var results []model.AssessmentResult
	err := r.DB.Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&results).Error
	return results, err
}

func (r *AssessmentResultRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentResult{}).Count(&count).Error
	return count, err
}

type TypeCount struct {
	DominantType string `json:"dominantType"`
	Count        int64  `json:"count"`
}

// DominantTypeDistribution groups results by dominant career type.
func (r *AssessmentResultRepository) DominantTypeDistribution() ([]TypeCount, error) {
	var rows []TypeCount
	err := r.DB.Model(&model.AssessmentResult{}).
		Select("dominant_type, COUNT(*) as count").
		Group("dominant_type").
		Order("count desc").
		Scan(&rows).Error
	return rows, err
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CompletionTrend counts submissions per day over the trailing window.
func (r *AssessmentResultRepository) CompletionTrend(days int) ([]DateCount, error) {
	since := time.Now().AddDate(0, 0, -days)

	var rows []DateCount
	err := r.DB.Model(&model.AssessmentResult{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') as date, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("date").
		Order("date asc").
		Scan(&rows).Error
	return rows, err
}
