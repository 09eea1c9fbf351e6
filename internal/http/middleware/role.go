package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain"
)

// RequireRoles allows only the listed roles. Auth must run first.
//
//	r.GET("/users", RequireRoles("org-owner", "org-admin"), handler)
func RequireRoles(allowedRoles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(string(r)))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(userRoleKey)
		if role == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "no role on request")
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			abort(c, http.StatusForbidden, "forbidden", "forbidden: role not allowed")
			return
		}
		c.Next()
	}
}

// RequirePermission allows callers for which can returns true.
func RequirePermission(perm domain.Permission, can func(domain.RequestContext, domain.Permission) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := CurrentUser(c)
		if rc.Anonymous() {
			abort(c, http.StatusUnauthorized, "unauthorized", "not signed in")
			return
		}
		if !can(rc, perm) {
			abort(c, http.StatusForbidden, "forbidden", "forbidden: missing permission "+string(perm))
			return
		}
		c.Next()
	}
}
