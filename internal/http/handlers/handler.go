// Package handlers serves the dashboard JSON API.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"dashkit/internal/catalog"
	"dashkit/internal/http/middleware"
	"dashkit/internal/services"
)

// Handler holds the services behind every route.
type Handler struct {
	Auth      services.AuthService
	Prefs     services.PreferencesService
	Menu      services.MenuService
	Views     *services.ViewService
	Docs      *services.DocumentService
	Export    services.ExportService
	Dashboard services.DashboardService
	Catalog   *catalog.Catalog
	DB        *sqlx.DB
}

func (h *Handler) auth(c *gin.Context) services.AuthService {
	svc := h.Auth
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

func (h *Handler) export(c *gin.Context) services.ExportService {
	svc := h.Export
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}
