package http

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// datePathLayout is the wire format for the :date path parameter.
const datePathLayout = "2006-01-02"

// processGenerateReq binds and validates the generate request body.
// The body is optional: an empty POST generates for today with no extra
// constraints.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processTodayReq binds the ordering policy query parameter.
func (h *handler) processTodayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDayReq binds the :date path parameter plus the policy query.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	date, err := parseDateParam(c)
	if err != nil {
		return req, err
	}
	req.date = date
	return req, nil
}

// processToggleReq binds the :date and :ordinal path parameters.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq

	date, err := parseDateParam(c)
	if err != nil {
		return req, err
	}
	req.date = date

	ordinal, err := strconv.Atoi(c.Param("ordinal"))
	if err != nil {
		return req, fmt.Errorf("ordinal must be an integer: %w", err)
	}
	req.ordinal = ordinal
	return req, nil
}

func parseDateParam(c *gin.Context) (time.Time, error) {
	raw := c.Param("date")
	date, err := time.ParseInLocation(datePathLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}
