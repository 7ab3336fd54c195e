package refresh

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"

	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
)

// Scheduler runs the daily schedule regeneration on a cron spec.
type Scheduler struct {
	l    log.Logger
	uc   schedule.UseCase
	spec string
	cron *cron.Cron
}

// New creates a Scheduler. spec is a standard 5-field cron expression.
func New(l log.Logger, uc schedule.UseCase, spec string) (*Scheduler, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if uc == nil {
		return nil, errors.New("schedule usecase is required")
	}
	if spec == "" {
		return nil, errors.New("cron spec is required")
	}

	return &Scheduler{
		l:    l,
		uc:   uc,
		spec: spec,
		cron: cron.New(),
	}, nil
}

// Start registers the job and launches the cron loop in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.l.Infof(ctx, "refresh scheduler started (spec %q)", s.spec)
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.l.Infof(ctx, "refresh scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	s.l.Infof(ctx, "refresh: regenerating all schedules")
	if err := s.uc.RegenerateAll(ctx); err != nil {
		s.l.Errorf(ctx, "refresh: regeneration failed: %v", err)
	}
}
