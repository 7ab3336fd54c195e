package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/middleware"
	profileHTTP "github.com/tsukasa1111/BurgerLendar/internal/profile/delivery/http"
	scheduleHTTP "github.com/tsukasa1111/BurgerLendar/internal/schedule/delivery/http"
)

// setupScheduleDomain registers the schedule routes under /api/v1/schedule.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}

// setupProfileDomain registers the profile routes under /api/v1/profile.
func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := profileHTTP.New(srv.l, srv.profileUC)
	profileHTTP.RegisterRoutes(api.Group("/profile"), h, mw)

	srv.l.Infof(ctx, "Profile domain registered")
	return nil
}
