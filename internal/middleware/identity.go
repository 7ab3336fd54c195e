package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/pkg/response"
)

const (
	// UserIDHeader carries the caller identity. Authentication itself is an
	// upstream concern; this service trusts the header as resolved identity.
	UserIDHeader = "X-User-ID"

	scopeKey = "scope"
)

// Identity resolves the caller identity header into an explicit model.Scope
// on the request context. Requests without the header are rejected.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the Scope stored by Identity. The second return
// is false when the middleware did not run.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
