package repository

import "errors"

var (
	ErrFailedToSave = errors.New("failed to save schedule")
	ErrFailedToGet  = errors.New("failed to get schedule")
	ErrFailedToRead = errors.New("failed to read completion flags")
	ErrFailedToFlag = errors.New("failed to write completion flag")
)
