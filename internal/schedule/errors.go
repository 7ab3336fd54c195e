package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("no schedule stored for that day")
	ErrOrdinalOutOfRange = errors.New("event ordinal out of range")
	ErrInvalidPolicy     = errors.New("unknown ordering policy")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrEmptyGeneration   = errors.New("generation produced no events")
)
