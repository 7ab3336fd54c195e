package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/middleware"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	"github.com/tsukasa1111/BurgerLendar/pkg/response"
)

// Generate godoc
// @Summary     Generate a day schedule
// @Description Builds a schedule from the stored profile plus optional appointments and tasks, persists it and returns the parsed events.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true  "Caller identity"
// @Param       body      body   generateReq false "Generation constraints"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Profile not found"
// @Failure     502 {object} response.Resp "Generation provider failed"
// @Router      /api/v1/schedule/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Today godoc
// @Summary     Today's schedule
// @Description Returns today's events classified against the wall clock, with completion flags applied.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true  "Caller identity"
// @Param       policy    query  string false "Display ordering (rotate|promote, default rotate)"
// @Success     200 {object} dayResp
// @Failure     404 {object} response.Resp "No schedule for today"
// @Router      /api/v1/schedule/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processTodayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Day(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// Day godoc
// @Summary     A specific day's schedule
// @Description Returns the stored events for a calendar day. Past days classify everything as past, future days as upcoming.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true  "Caller identity"
// @Param       date      path   string true  "Calendar day (YYYY-MM-DD)"
// @Param       policy    query  string false "Display ordering (rotate|promote, default rotate)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No schedule for that day"
// @Router      /api/v1/schedule/days/{date} [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Day(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// Toggle godoc
// @Summary     Toggle event completion
// @Description Flips one event's done flag, keyed by its parse-time ordinal. The flip is optimistic: on a persistence failure the response carries persisted=false.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       date      path   string true "Calendar day (YYYY-MM-DD)"
// @Param       ordinal   path   int    true "Parse-time event ordinal"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No schedule for that day"
// @Failure     422 {object} response.Resp "Ordinal out of range"
// @Router      /api/v1/schedule/days/{date}/events/{ordinal}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// ExportICS godoc
// @Summary     Export a day as iCalendar
// @Description Serializes the stored schedule for a day as an ics document.
// @Tags        Schedule
// @Produce     text/calendar
// @Param       X-User-ID header string true "Caller identity"
// @Param       date      path   string true "Calendar day (YYYY-MM-DD)"
// @Success     200 {string} string "iCalendar document"
// @Failure     404 {object} response.Resp "No schedule for that day"
// @Router      /api/v1/schedule/days/{date}/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	date, err := parseDateParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportICS(ctx, sc, schedule.ExportICSInput{Date: date})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.mapError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule-`+output.DayKey+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.Calendar))
}
