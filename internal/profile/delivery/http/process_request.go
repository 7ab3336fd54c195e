package http

import (
	"github.com/gin-gonic/gin"
)

// processSaveReq binds and validates the onboarding answers body.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
