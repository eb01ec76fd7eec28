package repository

import (
	"career_guidance_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) CountByRole(role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountCompletedStudents() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("role = ? AND assessment_completed = ?", model.Student, true).
		Count(&count).Error
	return count, err
}

// ListStudents pages through students, optionally filtered by completion
// status ("completed" / "pending") and a name/email search term.
func (r *UserRepository) ListStudents(page, limit int, status, search string) ([]model.User, int64, error) {
	var students []model.User
	var total int64

	query := r.DB.Model(&model.User{}).Where("role = ?", model.Student)

	switch status {
	case "completed":
		query = query.Where("assessment_completed = ?", true)
	case "pending":
		query = query.Where("assessment_completed = ?", false)
	}

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("AssessmentResult").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&students).Error
	return students, total, err
}

func (r *UserRepository) FindStudentByID(id uint) (*model.User, error) {
	var student model.User
	err := r.DB.Preload("AssessmentResult").
		Where("id = ? AND role = ?", id, model.Student).
		First(&student).Error
	return &student, err
}
