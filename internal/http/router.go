package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"dashkit/internal/config"
	"dashkit/internal/domain"
	h "dashkit/internal/http/handlers"
	"dashkit/internal/http/middleware"
	"dashkit/internal/services"
)

func NewRouter(cfg config.Config, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORS.AllowOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		limit := middleware.RateLimit(cfg.Auth.LoginRate, cfg.Auth.LoginBurst, 4096)
		auth.POST("/login", limit, hd.Login)
		auth.POST("/signup", limit, hd.Signup)
		auth.POST("/forgot-password", limit, hd.ForgotPassword)

		signedIn := api.Group("", middleware.Auth(hd.Auth))
		signedIn.POST("/auth/logout", hd.Logout)
		signedIn.GET("/auth/me", hd.Me)

		// Everything below needs the dashboard permission.
		app := signedIn.Group("", middleware.RequirePermission(domain.PermDashboardView, services.Can))

		app.GET("/users", middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin), hd.Users)

		// Collections
		collections := app.Group("/collections")
		collections.GET("", hd.Collections)
		collections.GET("/:name", hd.ListCollection)
		collections.GET("/:name/schema", hd.CollectionSchema)
		collections.GET("/:name/stats", hd.CollectionStats)
		collections.GET("/:name/export.pdf", hd.ExportCollection)
		collections.POST("/:name/refresh", middleware.RequireRoles(domain.RoleOwner), hd.RefreshCollection)
		collections.GET("/:name/:id", hd.GetRecord)
		collections.GET("/:name/:id/documents", hd.ListDocuments)
		collections.POST("/:name/:id/documents", hd.UploadDocuments)
		collections.DELETE("/:name/:id/documents/:docID", hd.DeleteDocument)

		// List views
		views := app.Group("/views")
		views.GET("/:name", hd.GetView)
		views.PATCH("/:name", hd.PatchView)
		views.DELETE("/:name", hd.ResetView)

		// Navigation
		app.GET("/menu", hd.MenuGroups)
		app.GET("/menu/pinned", hd.PinnedMenu)
		prefs := app.Group("/preferences")
		prefs.GET("", hd.Preferences)
		prefs.PUT("/sidebar", hd.SetSidebar)
		prefs.PUT("/theme", hd.SetTheme)
		prefs.POST("/pins", hd.AddPin)
		prefs.PUT("/pins/order", hd.ReorderPins)
		prefs.DELETE("/pins/:menuId", hd.RemovePin)

		// Dashboard pages
		app.GET("/dashboard", hd.Overview)
		app.GET("/dashboard/activity", hd.DashboardActivity)
		app.GET("/analytics", hd.Analytics)
		app.GET("/inbox", hd.Inbox)
		app.GET("/messages", hd.Messages)
		app.GET("/calendar", hd.Calendar)
		app.GET("/support", hd.Support)
	}

	h.SetRouter(r)
	return r
}
