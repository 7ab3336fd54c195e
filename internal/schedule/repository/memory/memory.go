package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
)

type userDay struct {
	userID string
	dayKey string
}

// implRepository is a process-local Repository used when no database is
// configured. Safe for concurrent use.
type implRepository struct {
	mu        sync.RWMutex
	schedules map[userDay]model.DaySchedule
	flags     map[userDay]model.CompletionSet
}

// New creates an empty in-memory Repository for the schedule domain.
func New() repo.Repository {
	return &implRepository{
		schedules: make(map[userDay]model.DaySchedule),
		flags:     make(map[userDay]model.CompletionSet),
	}
}

func (r *implRepository) SaveDaySchedule(_ context.Context, opt repo.SaveDayScheduleOptions) (model.DaySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sched := model.DaySchedule{
		UserID:      opt.UserID,
		DayKey:      opt.DayKey,
		Text:        opt.Text,
		GeneratedAt: time.Now(),
	}
	r.schedules[userDay{opt.UserID, opt.DayKey}] = sched
	return sched, nil
}

func (r *implRepository) GetDaySchedule(_ context.Context, opt repo.GetDayScheduleOptions) (model.DaySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.schedules[userDay{opt.UserID, opt.DayKey}], nil
}

func (r *implRepository) GetCompletionSet(_ context.Context, opt repo.GetCompletionSetOptions) (model.CompletionSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.flags[userDay{opt.UserID, opt.DayKey}]
	set := make(model.CompletionSet, len(stored))
	for ordinal, done := range stored {
		set[ordinal] = done
	}
	return set, nil
}

func (r *implRepository) SetCompletionFlag(_ context.Context, opt repo.SetCompletionFlagOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userDay{opt.UserID, opt.DayKey}
	if r.flags[key] == nil {
		r.flags[key] = make(model.CompletionSet)
	}
	r.flags[key][opt.Ordinal] = opt.Done
	return nil
}
