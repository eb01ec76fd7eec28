package service

import (
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/util"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentService struct {
	Engine     *scoring.Engine
	UserRepo   *repository.UserRepository
	ResultRepo *repository.AssessmentResultRepository
	DB         *gorm.DB
}

func NewAssessmentService(engine *scoring.Engine, userRepo *repository.UserRepository, resultRepo *repository.AssessmentResultRepository, db *gorm.DB) *AssessmentService {
	return &AssessmentService{
		Engine:     engine,
		UserRepo:   userRepo,
		ResultRepo: resultRepo,
		DB:         db,
	}
}

// Questions returns the ordered question bank served to clients.
func (s *AssessmentService) Questions() scoring.Bank {
	return s.Engine.Bank()
}

// SubmissionOutcome is what a successful submission reports back.
type SubmissionOutcome struct {
	Result           *model.AssessmentResult `json:"result"`
	ExperienceGained int                     `json:"experienceGained"`
	NewLevel         int                     `json:"newLevel"`
	TotalExperience  int                     `json:"totalExperience"`
}

// Submit scores the responses and persists the outcome. The result insert
// and the user XP/level/flag update commit in one transaction; the user
// row is locked and re-checked inside it, so concurrent submissions
// serialize and a retake is rejected instead of orphaning an old result.
func (s *AssessmentService) Submit(userID uint, responses []scoring.Response) (*SubmissionOutcome, error) {
	profile, experienceGained, err := s.Engine.Score(responses)
	if err != nil {
		return nil, err
	}

	records := make([]model.ResponseRecord, len(responses))
	for i, r := range responses {
		question, _ := s.Engine.Question(r.QuestionID)
		records[i] = model.ResponseRecord{
			Question: question.Text,
			Answer:   r.Answer,
			Category: string(r.Category),
		}
	}

	responsesJSON, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	var outcome *SubmissionOutcome
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}
		if user.AssessmentCompleted {
			return util.ErrAssessmentTaken
		}

		result := &model.AssessmentResult{
			UserID:           userID,
			Responses:        responsesJSON,
			CareerProfile:    profileJSON,
			DominantType:     string(profile.DominantType),
			ExperienceGained: experienceGained,
			CompletedAt:      time.Now(),
		}
		if err := tx.Create(result).Error; err != nil {
			return err
		}

		user.Experience += experienceGained
		user.Level = scoring.Level(user.Experience)
		user.AssessmentCompleted = true
		user.AssessmentResultID = &result.ID
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		outcome = &SubmissionOutcome{
			Result:           result,
			ExperienceGained: experienceGained,
			NewLevel:         user.Level,
			TotalExperience:  user.Experience,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Result fetches one result, enforcing that only the owner or an admin may
// read it.
func (s *AssessmentService) Result(id uint, claims *util.Claims) (*model.AssessmentResult, error) {
	result, err := s.ResultRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	if result.UserID != claims.UserID && claims.Role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	return result, nil
}

// LatestResult returns the caller's most recent result.
func (s *AssessmentService) LatestResult(userID uint) (*model.AssessmentResult, error) {
	result, err := s.ResultRepo.FindLatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	return result, err
}
