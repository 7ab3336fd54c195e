package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidAnswers  = errors.New("invalid onboarding answers")
)
