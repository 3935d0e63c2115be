package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/model"
	"obsidianlist/pkg/response"
)

// scopeKey is the gin context key the verified scope is stored under.
const scopeKey = "auth.scope"

// Auth verifies the bearer token and injects the caller's scope into the
// request context. Verified tokens are cached with a short TTL.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if sc, ok := m.scopeCache.Get(token); ok {
			c.Set(scopeKey, sc)
			c.Next()
			return
		}

		sc, err := m.jwtManager.VerifyToken(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		m.scopeCache.Add(token, sc)
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the verified scope the Auth middleware stored.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
