package usecase

import (
	"github.com/tsukasa1111/BurgerLendar/internal/profile/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
)

// implUseCase is the private implementation of profile.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new profile UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
