package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/internal/http/middleware"
	"dashkit/internal/services"
)

// GET /api/views/:name
func (h *Handler) GetView(c *gin.Context) {
	st, err := h.Views.Current(middleware.CurrentUser(c).UserID, c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// PATCH /api/views/:name
func (h *Handler) PatchView(c *gin.Context) {
	var patch services.ViewPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	st, err := h.Views.Apply(middleware.CurrentUser(c).UserID, c.Param("name"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DELETE /api/views/:name
func (h *Handler) ResetView(c *gin.Context) {
	st, err := h.Views.Reset(middleware.CurrentUser(c).UserID, c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
