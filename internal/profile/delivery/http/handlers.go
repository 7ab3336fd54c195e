package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/middleware"
	"github.com/tsukasa1111/BurgerLendar/pkg/response"
)

// Save godoc
// @Summary     Save onboarding answers
// @Description Upserts the caller's lifestyle answers that drive schedule generation.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Caller identity"
// @Param       body      body   saveReq true "Onboarding answers"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/profile [PUT]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Save(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProfileResp(output.Profile))
}

// Get godoc
// @Summary     Get onboarding answers
// @Description Returns the caller's stored lifestyle answers.
// @Tags        Profile
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Profile not found"
// @Router      /api/v1/profile [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProfileResp(output.Profile))
}
