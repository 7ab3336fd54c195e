package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	"github.com/tsukasa1111/BurgerLendar/pkg/response"
)

// mapError translates domain errors into status-coded envelopes.
// Unknown errors fall through to the opaque 500 response.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound),
		errors.Is(err, schedule.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   err.Error(),
		})
	case errors.Is(err, schedule.ErrInvalidPolicy):
		response.Error(c, err, nil)
	case errors.Is(err, schedule.ErrOrdinalOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, response.Resp{
			ErrorCode: http.StatusUnprocessableEntity,
			Message:   err.Error(),
		})
	case errors.Is(err, schedule.ErrEmptyGeneration):
		c.JSON(http.StatusBadGateway, response.Resp{
			ErrorCode: http.StatusBadGateway,
			Message:   err.Error(),
		})
	default:
		response.InternalError(c, err)
	}
}
