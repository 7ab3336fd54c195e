package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	"github.com/tsukasa1111/BurgerLendar/pkg/response"
)

// mapError translates domain errors into status-coded envelopes.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   err.Error(),
		})
	case errors.Is(err, profile.ErrInvalidAnswers):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
