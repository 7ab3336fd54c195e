package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	repo "github.com/tsukasa1111/BurgerLendar/internal/profile/repository"
)

// implRepository is a process-local Repository used when no database is
// configured. Safe for concurrent use.
type implRepository struct {
	mu       sync.RWMutex
	profiles map[string]model.Profile
}

// New creates an empty in-memory Repository for the profile domain.
func New() repo.Repository {
	return &implRepository{
		profiles: make(map[string]model.Profile),
	}
}

func (r *implRepository) UpsertProfile(_ context.Context, opt repo.UpsertProfileOptions) (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := model.Profile{
		UserID:              opt.UserID,
		BathSlots:           append([]model.BathSlot(nil), opt.BathSlots...),
		LaundryIntervalDays: opt.LaundryIntervalDays,
		SleepHours:          opt.SleepHours,
		CigarettesPerDay:    opt.CigarettesPerDay,
		Motivation:          opt.Motivation,
		UpdatedAt:           time.Now(),
	}
	r.profiles[opt.UserID] = p
	return p, nil
}

func (r *implRepository) GetProfile(_ context.Context, opt repo.GetProfileOptions) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.profiles[opt.UserID], nil
}

func (r *implRepository) ListProfiles(_ context.Context) ([]model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]model.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].UserID < profiles[j].UserID })
	return profiles, nil
}
