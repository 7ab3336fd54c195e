package middleware

import (
	"github.com/tsukasa1111/BurgerLendar/config"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
	}
}
