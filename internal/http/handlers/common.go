package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError decodes the request body into dst. On failure it has
// already written a 400 and returns false.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
