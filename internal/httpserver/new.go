package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/config"
	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Domains
	scheduleUC schedule.UseCase
	profileUC  profile.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	AppConfig   *config.Config
	Port        int
	Mode        string
	Environment string

	// Domains
	ScheduleUC schedule.UseCase
	ProfileUC  profile.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		cfg:         cfg.AppConfig,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		scheduleUC:  cfg.ScheduleUC,
		profileUC:   cfg.ProfileUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule usecase is required")
	}
	if srv.profileUC == nil {
		return errors.New("profile usecase is required")
	}
	return nil
}

// Run wires routes and blocks serving HTTP traffic.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
