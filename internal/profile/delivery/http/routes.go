package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.PUT("", mw.Identity(), h.Save)
	rg.GET("", mw.Identity(), h.Get)
}
