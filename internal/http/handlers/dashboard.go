package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain"
)

// GET /api/dashboard
func (h *Handler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Overview(c.Request.Context()))
}

// GET /api/dashboard/activity?page=0
func (h *Handler) DashboardActivity(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "page", Msg: "page must be a non-negative integer"})
		return
	}
	res, err := h.Dashboard.Activity(c.Request.Context(), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Analytics(c *gin.Context) { c.JSON(http.StatusOK, h.Dashboard.Analytics()) }

func (h *Handler) Inbox(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"emails": h.Dashboard.Inbox()})
}

func (h *Handler) Messages(c *gin.Context) { c.JSON(http.StatusOK, h.Dashboard.Messages()) }

func (h *Handler) Calendar(c *gin.Context) { c.JSON(http.StatusOK, h.Dashboard.Calendar()) }

func (h *Handler) Support(c *gin.Context) { c.JSON(http.StatusOK, h.Dashboard.Support()) }
