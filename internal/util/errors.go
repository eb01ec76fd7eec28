package util

import "errors"

var (
	ErrEmailRegistered        = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrResultNotFound         = errors.New("assessment result not found")
	ErrAssessmentTaken        = errors.New("assessment already completed")
	ErrStudentNotFound        = errors.New("student not found")
	ErrNoCompletedAssessments = errors.New("no completed assessments found")
)
