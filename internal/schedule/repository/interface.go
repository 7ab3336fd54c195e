package repository

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
)

// Repository is the composed interface for the schedule domain data store.
type Repository interface {
	DayScheduleRepository
	CompletionRepository
}

// DayScheduleRepository defines data access for generated day schedules.
type DayScheduleRepository interface {
	// SaveDaySchedule upserts the raw text for a (user, dayKey) pair.
	SaveDaySchedule(ctx context.Context, opt SaveDayScheduleOptions) (model.DaySchedule, error)
	// GetDaySchedule returns the stored schedule, zero-value (empty DayKey)
	// when not found — not-found is not an error at this layer.
	GetDaySchedule(ctx context.Context, opt GetDayScheduleOptions) (model.DaySchedule, error)
}

// CompletionRepository defines data access for per-event done flags.
type CompletionRepository interface {
	GetCompletionSet(ctx context.Context, opt GetCompletionSetOptions) (model.CompletionSet, error)
	SetCompletionFlag(ctx context.Context, opt SetCompletionFlagOptions) error
}
