package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name                string            `gorm:"size:100;not null" json:"name"`
	Email               string            `gorm:"size:100;unique;not null" json:"email"`
	Password            string            `gorm:"size:100;not null" json:"-"`
	Role                UserRole          `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	Level               int               `gorm:"default:1" json:"level"`
	Experience          int               `gorm:"default:0" json:"experience"` // cumulative XP, never decreases
	AssessmentCompleted bool              `gorm:"default:false" json:"assessmentCompleted"`
	AssessmentResultID  *uint             `gorm:"index" json:"assessmentResultId,omitempty"`
	AssessmentResult    *AssessmentResult `gorm:"foreignKey:AssessmentResultID" json:"assessmentResult,omitempty"`
}

func (User) TableName() string {
	return "users"
}
