package http

import (
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
