package usecase

import (
	"github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/internal/timeline"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	profiles ProfileReader
	tl       timeline.Service
	llm      Generator
	calendar CalendarSource // nil when Google Calendar is not configured
	clock    timeutil.Clock
}

// New creates a new schedule UseCase instance.
func New(
	l log.Logger,
	repo repository.Repository,
	profiles ProfileReader,
	tl timeline.Service,
	llm Generator,
	calendar CalendarSource,
	clock timeutil.Clock,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		profiles: profiles,
		tl:       tl,
		llm:      llm,
		calendar: calendar,
		clock:    clock,
	}
}
