package service

import (
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/util"
	"career_guidance_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dashboardCacheKey = "admin:dashboard"
	analyticsCacheKey = "admin:analytics"
	adminCacheTTL     = 60 * time.Second

	recentActivityLimit = 5
	trendWindowDays     = 30
)

type AdminService struct {
	UserRepo   *repository.UserRepository
	ResultRepo *repository.AssessmentResultRepository
	DB         *gorm.DB
	Redis      *redis.Client
}

func NewAdminService(userRepo *repository.UserRepository, resultRepo *repository.AssessmentResultRepository, db *gorm.DB, rdb *redis.Client) *AdminService {
	return &AdminService{
		UserRepo:   userRepo,
		ResultRepo: resultRepo,
		DB:         db,
		Redis:      rdb,
	}
}

type DashboardStatistics struct {
	TotalStudents        int64 `json:"totalStudents"`
	CompletedAssessments int64 `json:"completedAssessments"`
	PendingAssessments   int64 `json:"pendingAssessments"`
	CompletionRate       int   `json:"completionRate"`
}

type DashboardPayload struct {
	Statistics     DashboardStatistics      `json:"statistics"`
	RecentActivity []model.AssessmentResult `json:"recentActivity"`
}

// Dashboard aggregates student/completion counts plus the latest
// submissions. The payload is cached briefly; a stale minute is acceptable
// for an overview page.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardPayload, error) {
	var cached DashboardPayload
	if s.readCache(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	totalStudents, err := s.UserRepo.CountByRole(model.Student)
	if err != nil {
		return nil, err
	}
	completed, err := s.UserRepo.CountCompletedStudents()
	if err != nil {
		return nil, err
	}

	rate := 0
	if totalStudents > 0 {
		rate = int(float64(completed)/float64(totalStudents)*100 + 0.5)
	}

	recent, err := s.ResultRepo.Recent(recentActivityLimit)
	if err != nil {
		return nil, err
	}

	payload := &DashboardPayload{
		Statistics: DashboardStatistics{
			TotalStudents:        totalStudents,
			CompletedAssessments: completed,
			PendingAssessments:   totalStudents - completed,
			CompletionRate:       rate,
		},
		RecentActivity: recent,
	}
	s.writeCache(ctx, dashboardCacheKey, payload)
	return payload, nil
}

func (s *AdminService) Students(page, limit int, status, search string) ([]model.User, int64, error) {
	return s.UserRepo.ListStudents(page, limit, status, search)
}

func (s *AdminService) Student(id uint) (*model.User, error) {
	student, err := s.UserRepo.FindStudentByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	return student, err
}

// DeleteStudent removes a student and every result they own in one
// transaction.
func (s *AdminService) DeleteStudent(id uint) error {
	student, err := s.Student(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", student.ID).Delete(&model.AssessmentResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, student.ID).Error
	})
}

type AnalyticsPayload struct {
	CareerTypeDistribution []repository.TypeCount `json:"careerTypeDistribution"`
	CompletionTrend        []repository.DateCount `json:"completionTrend"`
	TotalAssessments       int64                  `json:"totalAssessments"`
}

func (s *AdminService) Analytics(ctx context.Context) (*AnalyticsPayload, error) {
	var cached AnalyticsPayload
	if s.readCache(ctx, analyticsCacheKey, &cached) {
		return &cached, nil
	}

	distribution, err := s.ResultRepo.DominantTypeDistribution()
	if err != nil {
		return nil, err
	}
	trend, err := s.ResultRepo.CompletionTrend(trendWindowDays)
	if err != nil {
		return nil, err
	}
	total, err := s.ResultRepo.CountAll()
	if err != nil {
		return nil, err
	}

	payload := &AnalyticsPayload{
		CareerTypeDistribution: distribution,
		CompletionTrend:        trend,
		TotalAssessments:       total,
	}
	s.writeCache(ctx, analyticsCacheKey, payload)
	return payload, nil
}

func (s *AdminService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.Redis == nil {
		return false
	}
	raw, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *AdminService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, adminCacheTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache admin payload", zap.String("key", key), zap.Error(err))
	}
}
