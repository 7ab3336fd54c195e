package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require a resolved caller identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/generate", mw.Identity(), h.Generate)
	rg.GET("/today", mw.Identity(), h.Today)

	days := rg.Group("/days")
	{
		days.GET("/:date", mw.Identity(), h.Day)
		days.GET("/:date/ics", mw.Identity(), h.ExportICS)
		days.POST("/:date/events/:ordinal/toggle", mw.Identity(), h.Toggle)
	}
}
