package model

import (
	"encoding/json"
	"time"
)

// ResponseRecord is one answered question as stored with a result.
type ResponseRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// AssessmentResult is created exactly once per successful submission and is
// immutable afterwards except by deletion, which cascades from the owning
// user.
// swagger:model AssessmentResult
type AssessmentResult struct {
	BaseModel
	UserID           uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User             *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Responses        json.RawMessage `gorm:"type:json" json:"responses"`     // []ResponseRecord
	CareerProfile    json.RawMessage `gorm:"type:json" json:"careerProfile"` // scoring.CareerProfile
	DominantType     string          `gorm:"size:20;index" json:"dominantType"`
	ExperienceGained int             `gorm:"default:150" json:"experienceGained"`
	CompletedAt      time.Time       `json:"completedAt"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}
