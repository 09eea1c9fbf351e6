package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain"
	"dashkit/internal/http/middleware"
)

// GET /api/menu
func (h *Handler) MenuGroups(c *gin.Context) {
	uid := middleware.CurrentUser(c).UserID
	pinned, err := h.Prefs.PinnedMenuIDs(c.Request.Context(), uid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": h.Menu.Groups(pinned)})
}

// GET /api/menu/pinned
func (h *Handler) PinnedMenu(c *gin.Context) {
	items, err := h.Prefs.PinnedMenu(c.Request.Context(), middleware.CurrentUser(c).UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /api/preferences
func (h *Handler) Preferences(c *gin.Context) {
	p, err := h.Prefs.Get(c.Request.Context(), middleware.CurrentUser(c).UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type sidebarRequest struct {
	Collapsed bool `json:"collapsed"`
}

// PUT /api/preferences/sidebar
func (h *Handler) SetSidebar(c *gin.Context) {
	var req sidebarRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.Prefs.SetSidebarCollapsed(c.Request.Context(), middleware.CurrentUser(c).UserID, req.Collapsed); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.Preferences(c)
}

type themeRequest struct {
	Theme domain.Theme `json:"theme"`
}

// PUT /api/preferences/theme
func (h *Handler) SetTheme(c *gin.Context) {
	var req themeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.Prefs.SetTheme(c.Request.Context(), middleware.CurrentUser(c).UserID, req.Theme); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.Preferences(c)
}

type pinRequest struct {
	MenuID string `json:"menuId"`
}

// POST /api/preferences/pins
func (h *Handler) AddPin(c *gin.Context) {
	var req pinRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.Prefs.AddPin(c.Request.Context(), middleware.CurrentUser(c).UserID, req.MenuID); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.Preferences(c)
}

// DELETE /api/preferences/pins/:menuId
func (h *Handler) RemovePin(c *gin.Context) {
	if err := h.Prefs.RemovePin(c.Request.Context(), middleware.CurrentUser(c).UserID, c.Param("menuId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.Preferences(c)
}

type pinOrderRequest struct {
	Order []string `json:"order"`
}

// PUT /api/preferences/pins/order
func (h *Handler) ReorderPins(c *gin.Context) {
	var req pinOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.Prefs.ReorderPins(c.Request.Context(), middleware.CurrentUser(c).UserID, req.Order); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.Preferences(c)
}
