package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain"
)

const (
	authKey     = "auth"
	userRoleKey = "userRole"
)

// Authenticator verifies a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.RequestContext, error)
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"code":       code,
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}

func bearer(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// Auth requires a valid bearer token and stores the caller on the
// context.
func Auth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		rc, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			if domain.IsUnauthorized(err) {
				abort(c, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}
			_ = c.Error(err)
			abort(c, http.StatusInternalServerError, "internal_error", "authentication failed")
			return
		}
		c.Set(authKey, rc)
		c.Set(userRoleKey, string(rc.Role))
		c.Next()
	}
}

// CurrentUser returns the caller set by Auth, or an anonymous context.
func CurrentUser(c *gin.Context) domain.RequestContext {
	if v, ok := c.Get(authKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}
